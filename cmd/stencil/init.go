// Package main provides the entry point for the stencil CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coppervale/stencil/internal/config"
	"github.com/coppervale/stencil/internal/output"
)

// sampleModel is written to the models directory on init as a starting point.
const sampleModel = `---
description: Sample two-line badge
args:
  - label
---
<svg xmlns="http://www.w3.org/2000/svg" width="240" height="60">
<text x="10" y="35" font-family="sans-serif" font-size="20">
#GET 0
</text>
</svg>
`

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	force  bool
	dryRun bool
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Message string `json:"message,omitempty"`
}

// initState holds the current state of the workspace.
type initState struct {
	modelsDirExists bool
	imagesDirExists bool
	configExists    bool
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [<dir>]",
		Short: "Initialize a stencil workspace",
		Long: `Initialize a stencil workspace in the given directory (default: current).

This command scaffolds everything needed to start generating images:
  - Creates the models/ directory with a sample model
  - Creates the images/ directory for image assets
  - Writes a stencil.yaml with default settings

The command is idempotent - existing files are left alone unless --force.

Examples:
  stencil init              # Initialize the current directory
  stencil init my-project   # Initialize a new directory
  stencil init --dry-run    # Show what would be done`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite existing workspace files")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, dir string, flags *initFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	state := gatherInitState(dir)

	if flags.dryRun {
		return handleInitDryRun(printer, dir, state)
	}

	if isAlreadyInitialized(state) && !flags.force {
		return outputAlreadyInitialized(printer, dir)
	}

	steps := executeInitSteps(dir, state, flags)
	return outputInitResult(printer, dir, steps)
}

// gatherInitState checks the current workspace state.
func gatherInitState(dir string) *initState {
	state := &initState{}

	if info, err := os.Stat(filepath.Join(dir, config.DefaultModelsDir)); err == nil && info.IsDir() {
		state.modelsDirExists = true
	}
	if info, err := os.Stat(filepath.Join(dir, config.DefaultImagesDir)); err == nil && info.IsDir() {
		state.imagesDirExists = true
	}
	if _, err := os.Stat(filepath.Join(dir, config.File)); err == nil {
		state.configExists = true
	}

	return state
}

// isAlreadyInitialized checks if the workspace is fully set up.
func isAlreadyInitialized(state *initState) bool {
	return state.modelsDirExists && state.imagesDirExists && state.configExists
}

// executeInitSteps performs the scaffolding and records per-step results.
func executeInitSteps(dir string, state *initState, flags *initFlags) []initStepResult {
	var steps []initStepResult

	steps = append(steps, stepCreateDir("models_dir", filepath.Join(dir, config.DefaultModelsDir), state.modelsDirExists))
	steps = append(steps, stepCreateDir("images_dir", filepath.Join(dir, config.DefaultImagesDir), state.imagesDirExists))
	steps = append(steps, stepWriteConfig(dir, state.configExists, flags.force))
	steps = append(steps, stepWriteSample(dir, flags.force))

	return steps
}

// stepCreateDir creates a directory if it does not already exist.
func stepCreateDir(name, path string, exists bool) initStepResult {
	if exists {
		return initStepResult{Name: name, Status: "skipped", Message: path + " already exists"}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return initStepResult{Name: name, Status: "failed", Message: err.Error()}
	}
	return initStepResult{Name: name, Status: "ok", Message: "created " + path}
}

// stepWriteConfig writes the default stencil.yaml.
func stepWriteConfig(dir string, exists, force bool) initStepResult {
	path := filepath.Join(dir, config.File)
	if exists && !force {
		return initStepResult{Name: "config", Status: "skipped", Message: path + " already exists"}
	}
	data, err := config.Default().Marshal()
	if err != nil {
		return initStepResult{Name: "config", Status: "failed", Message: err.Error()}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return initStepResult{Name: "config", Status: "failed", Message: err.Error()}
	}
	return initStepResult{Name: "config", Status: "ok", Message: "wrote " + path}
}

// stepWriteSample writes the sample model unless one is already present.
func stepWriteSample(dir string, force bool) initStepResult {
	path := filepath.Join(dir, config.DefaultModelsDir, "sample.svg")
	if _, err := os.Stat(path); err == nil && !force {
		return initStepResult{Name: "sample_model", Status: "skipped", Message: path + " already exists"}
	}
	if err := os.WriteFile(path, []byte(sampleModel), 0o644); err != nil {
		return initStepResult{Name: "sample_model", Status: "failed", Message: err.Error()}
	}
	return initStepResult{Name: "sample_model", Status: "ok", Message: "wrote " + path}
}

// handleInitDryRun outputs what would be done without making changes.
func handleInitDryRun(printer *output.Printer, dir string, state *initState) error {
	steps := buildDryRunSteps(dir, state)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "dry_run",
			"dir":    dir,
			"steps":  steps,
		})
	}

	printer.Println("Would initialize workspace in", dir+":")
	for _, s := range steps {
		printer.Print("  %-12s %s\n", s.Name, s.Message)
	}
	return nil
}

// buildDryRunSteps describes the steps init would take.
func buildDryRunSteps(dir string, state *initState) []initStepResult {
	describe := func(name, path string, exists bool) initStepResult {
		if exists {
			return initStepResult{Name: name, Status: "skipped", Message: path + " already exists"}
		}
		return initStepResult{Name: name, Status: "dry_run", Message: "would create " + path}
	}
	return []initStepResult{
		describe("models_dir", filepath.Join(dir, config.DefaultModelsDir), state.modelsDirExists),
		describe("images_dir", filepath.Join(dir, config.DefaultImagesDir), state.imagesDirExists),
		describe("config", filepath.Join(dir, config.File), state.configExists),
		describe("sample_model", filepath.Join(dir, config.DefaultModelsDir, "sample.svg"), false),
	}
}

// outputAlreadyInitialized handles the already-initialized case.
func outputAlreadyInitialized(printer *output.Printer, dir string) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":              "ok",
			"already_initialized": true,
			"dir":                 dir,
		})
	}
	printer.Println("Workspace already initialized in", dir)
	printer.Println("Run 'stencil list' to see available models.")
	return nil
}

// outputInitResult outputs the final initialization result.
func outputInitResult(printer *output.Printer, dir string, steps []initStepResult) error {
	var failed []initStepResult
	for _, s := range steps {
		if s.Status == "failed" {
			failed = append(failed, s)
		}
	}

	if printer.IsJSON() {
		status := "ok"
		if len(failed) > 0 {
			status = "failed"
		}
		if err := printer.Success(map[string]any{
			"status":              status,
			"dir":                 dir,
			"already_initialized": false,
			"steps":               steps,
		}); err != nil {
			return err
		}
		if len(failed) > 0 {
			return output.NewSystemError("workspace initialization failed")
		}
		return nil
	}

	for _, s := range steps {
		printer.Print("  %-12s %s\n", s.Name, s.Message)
	}
	if len(failed) > 0 {
		err := output.NewSystemError(fmt.Sprintf("%d initialization step(s) failed", len(failed)))
		printer.Error(err)
		return err
	}

	printer.Println()
	printer.Println("Workspace ready. Try:")
	printer.Println("  stencil generate sample \"Hello\"")
	return nil
}
