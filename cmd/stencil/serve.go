// Package main provides the entry point for the stencil CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	stencilmcp "github.com/coppervale/stencil/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var imagesFlag bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run stencil as a Model Context Protocol (MCP) server over stdio.

This exposes model listing and image generation as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "stencil": {
        "command": "stencil",
        "args": ["serve"]
      }
    }
  }

Available tools: models, show, images, generate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			generator, _, err := buildGenerator(".", imagesFlag)
			if err != nil {
				return err
			}
			server := stencilmcp.NewServer(buildVersion(), generator)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().BoolVar(&imagesFlag, "images", false, "Resolve arguments against the image store")

	return cmd
}
