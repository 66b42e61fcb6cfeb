// Package main provides the entry point for the stencil CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/model"
	"github.com/coppervale/stencil/internal/output"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	return newGenerateCmdInternal(nil)
}

// newGenerateCmdInternal creates the generate command with optional generator
// injection. If generator is nil, one is built from the current workspace when
// the command runs.
func newGenerateCmdInternal(generator *gen.Generator) *cobra.Command {
	var (
		outFlag    string
		forceFlag  bool
		imagesFlag bool
	)

	cmd := &cobra.Command{
		Use:   "generate <model> [<arg>...]",
		Short: "Generate an image from a model",
		Long: `Generate an image by substituting arguments into a model's placeholders.

The n-th "#GET n" line in the model is replaced by the n-th argument; every
other line is written through verbatim. With image resolution enabled, an
argument matching the name of a loaded image substitutes that image's content
instead of the argument text.

Examples:
  stencil generate badge "Hello"              # Write to stdout
  stencil generate badge "Hello" --out b.svg  # Write to a file
  stencil generate card logo --images         # Resolve args against images`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, generator, args, outFlag, forceFlag, imagesFlag)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite the output file if it exists")
	cmd.Flags().BoolVar(&imagesFlag, "images", false, "Resolve arguments against the image store")

	return cmd
}

// generateResult is the JSON payload for the generate command.
type generateResult struct {
	Model  string `json:"model"`
	Output string `json:"output,omitempty"`
	Path   string `json:"path,omitempty"`
	Bytes  int    `json:"bytes"`
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, generator *gen.Generator, args []string, outFlag string, forceFlag, imagesFlag bool) error {
	jsonMode := isJSONMode(cmd)
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))

	// Build generator if not injected
	if generator == nil {
		var err error
		generator, _, err = buildGenerator(".", imagesFlag)
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	name := args[0]
	genArgs := args[1:]

	out, err := generator.Generate(name, genArgs)
	if err != nil {
		err = classifyGenerateError(name, err)
		printer.Error(err)
		return err
	}

	if outFlag != "" {
		if err := generator.GenerateFile(outFlag, name, genArgs, forceFlag); err != nil {
			err = classifyGenerateError(name, err)
			printer.Error(err)
			return err
		}
		if jsonMode {
			return printer.WriteJSON(generateResult{Model: name, Path: outFlag, Bytes: len(out)})
		}
		return printer.Success(map[string]any{"message": fmt.Sprintf("Wrote %s (%d bytes)", outFlag, len(out))})
	}

	if jsonMode {
		return printer.WriteJSON(generateResult{Model: name, Output: string(out), Bytes: len(out)})
	}

	// Raw output to stdout so it can be piped into a file or viewer.
	printer.Print("%s", out)
	return nil
}

// classifyGenerateError maps generation failures to exit-coded errors.
func classifyGenerateError(name string, err error) error {
	var argErr *gen.ArgIndexError
	var parseErr *model.ParseError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return output.NewUserError(fmt.Sprintf("model %q not found. Run 'stencil list' to see available models", name))
	case errors.As(err, &argErr):
		return output.NewUserError(argErr.Error())
	case errors.As(err, &parseErr):
		return output.NewUserError(parseErr.Error())
	case errors.Is(err, gen.ErrOutputExists):
		return output.NewConflictError(err.Error() + ". Use --force to overwrite")
	default:
		return output.NewSystemErrorWithCause("generation failed", err)
	}
}
