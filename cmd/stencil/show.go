// Package main provides the entry point for the stencil CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/model"
	"github.com/coppervale/stencil/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return newShowCmdInternal(nil)
}

// newShowCmdInternal creates the show command with optional generator
// injection. If generator is nil, one is built from the current workspace when
// the command runs.
func newShowCmdInternal(generator *gen.Generator) *cobra.Command {
	var sourceFlag bool

	cmd := &cobra.Command{
		Use:   "show <model>",
		Short: "Display a single model",
		Long: `Display a model's metadata and placeholders.

Examples:
  stencil show badge            # Show model details
  stencil show badge --source   # Print the raw model text
  stencil show badge --json     # Show as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, generator, args[0], sourceFlag)
		},
	}

	cmd.Flags().BoolVar(&sourceFlag, "source", false, "Print the raw model text")

	return cmd
}

// showResult is the JSON payload for the show command.
type showResult struct {
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Source       string            `json:"source"`
	Lines        int               `json:"lines"`
	RequiredArgs int               `json:"required_args"`
	ArgNames     []string          `json:"arg_names,omitempty"`
	Placeholders []placeholderItem `json:"placeholders"`
}

type placeholderItem struct {
	Line  int `json:"line"`
	Index int `json:"index"`
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, generator *gen.Generator, name string, sourceFlag bool) error {
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

	m, err := generator.Library().Load(name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			err = output.NewUserError(fmt.Sprintf("model %q not found. Run 'stencil list' to see available models", name))
		} else {
			var parseErr *model.ParseError
			if errors.As(err, &parseErr) {
				err = output.NewUserError(parseErr.Error())
			} else {
				err = output.NewSystemErrorWithCause("failed to load model", err)
			}
		}
		printer.Error(err)
		return err
	}

	if sourceFlag {
		for _, line := range m.Lines {
			if line.Placeholder {
				printer.Println(model.Marker + " " + strconv.Itoa(line.ArgIndex))
				continue
			}
			printer.Println(line.Text)
		}
		return nil
	}

	if printer.IsJSON() {
		return printer.WriteJSON(buildShowResult(m))
	}

	outputShowHuman(printer, m)
	return nil
}

// buildShowResult assembles the JSON view of a model.
func buildShowResult(m *model.Model) showResult {
	placeholders := m.Placeholders()
	items := make([]placeholderItem, len(placeholders))
	for i, l := range placeholders {
		items[i] = placeholderItem{Line: l.Num, Index: l.ArgIndex}
	}
	return showResult{
		Name:         m.Name,
		Description:  m.Description,
		Source:       m.Source,
		Lines:        len(m.Lines),
		RequiredArgs: m.RequiredArgs(),
		ArgNames:     m.ArgNames,
		Placeholders: items,
	}
}

// outputShowHuman outputs the model in human-readable format.
func outputShowHuman(printer *output.Printer, m *model.Model) {
	printer.Println(m.Name)

	printer.Section("Model")
	if m.Description != "" {
		printer.KeyValue("Description", m.Description)
	}
	printer.KeyValue("Source", m.Source)
	printer.KeyValue("Lines", strconv.Itoa(len(m.Lines)))
	printer.KeyValue("Required args", strconv.Itoa(m.RequiredArgs()))
	if len(m.ArgNames) > 0 {
		printer.KeyValue("Arg names", strings.Join(m.ArgNames, ", "))
	}

	placeholders := m.Placeholders()
	if len(placeholders) == 0 {
		return
	}
	printer.Section("Placeholders")
	for _, l := range placeholders {
		printer.KeyValue("Line "+strconv.Itoa(l.Num), "argument "+strconv.Itoa(l.ArgIndex))
	}
}
