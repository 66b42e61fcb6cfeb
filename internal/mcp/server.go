// Package mcp provides a Model Context Protocol server for stencil.
// It exposes model listing and generation as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/coppervale/stencil/internal/gen"
)

// NewServer creates an MCP server with all stencil tools registered.
func NewServer(version string, generator *gen.Generator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "stencil",
		Version: version,
	}, nil)
	registerTools(server, generator)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// generateAnnotations returns annotations for the generate tool, which may
// write a file but never destroys existing content without force.
func generateAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all stencil tools to the server.
func registerTools(server *mcp.Server, generator *gen.Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "models",
		Description: "List available models with their descriptions, required argument counts, and sources.",
		Annotations: readOnlyAnnotations(),
	}, handleModels(generator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Inspect a single model: metadata, required arguments, and each placeholder's line number and argument index.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(generator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "images",
		Description: "List loaded images with their sizes.",
		Annotations: readOnlyAnnotations(),
	}, handleImages(generator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate output from a model and an ordered argument list. Returns the output inline, or writes it to a file when out is set.",
		Annotations: generateAnnotations(),
	}, handleGenerate(generator))
}
