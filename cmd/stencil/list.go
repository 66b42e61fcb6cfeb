// Package main provides the entry point for the stencil CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/model"
	"github.com/coppervale/stencil/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return newListCmdInternal(nil)
}

// newListCmdInternal creates the list command with optional generator
// injection. If generator is nil, one is built from the current workspace when
// the command runs.
func newListCmdInternal(generator *gen.Generator) *cobra.Command {
	var imagesFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available models",
		Long: `List the models visible from the current workspace.

Workspace models shadow global models with the same name. Use --images to
list the loaded image assets instead.

Examples:
  stencil list            # List models
  stencil list --images   # List image assets
  stencil list --json     # List as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, generator, imagesFlag)
		},
	}

	cmd.Flags().BoolVar(&imagesFlag, "images", false, "List image assets instead of models")

	return cmd
}

// listResult is the JSON payload for the list command.
type listResult struct {
	Count  int          `json:"count"`
	Models []model.Info `json:"models"`
}

// imageListResult is the JSON payload for list --images.
type imageListResult struct {
	Count  int             `json:"count"`
	Images []imageListItem `json:"images"`
}

type imageListItem struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// runList executes the list command.
func runList(cmd *cobra.Command, generator *gen.Generator, imagesFlag bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	// Build generator if not injected
	if generator == nil {
		var err error
		generator, _, err = buildGenerator(".", false)
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	if imagesFlag {
		return runListImages(printer, generator)
	}

	infos, err := generator.Library().List()
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to list models", err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(listResult{Count: len(infos), Models: infos})
	}

	if len(infos) == 0 {
		printer.Println("No models found. Add .svg files to the models directory.")
		return nil
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Name, strconv.Itoa(info.Args), info.Description, info.Source}
	}
	printer.Table([]string{"NAME", "ARGS", "DESCRIPTION", "SOURCE"}, rows)
	return nil
}

// runListImages lists the loaded image assets.
func runListImages(printer *output.Printer, generator *gen.Generator) error {
	store := generator.Images()
	names := store.Names()

	if printer.IsJSON() {
		items := make([]imageListItem, len(names))
		for i, name := range names {
			data, _ := store.Lookup(name)
			items[i] = imageListItem{Name: name, Size: len(data)}
		}
		return printer.WriteJSON(imageListResult{Count: len(items), Images: items})
	}

	if len(names) == 0 {
		printer.Println("No images found. Add files to the images directory.")
		return nil
	}

	rows := make([][]string, len(names))
	for i, name := range names {
		data, _ := store.Lookup(name)
		rows[i] = []string{name, strconv.Itoa(len(data)) + " bytes"}
	}
	printer.Table([]string{"NAME", "SIZE"}, rows)
	return nil
}
