// Package main provides the entry point for the stencil CLI.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"

	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/image"
	"github.com/coppervale/stencil/internal/model"
)

// newTestGenerator builds a generator over in-memory model and image files.
func newTestGenerator(t *testing.T, models, images map[string]string, opts ...gen.Option) *gen.Generator {
	t.Helper()

	modelFS := fstest.MapFS{}
	for name, data := range models {
		modelFS[name] = &fstest.MapFile{Data: []byte(data)}
	}
	imageFS := fstest.MapFS{}
	for name, data := range images {
		imageFS[name] = &fstest.MapFile{Data: []byte(data)}
	}

	store, err := image.Load(imageFS)
	if err != nil {
		t.Fatalf("image.Load() error = %v", err)
	}
	return gen.New(model.NewLibrary(modelFS, nil), store, opts...)
}

// executeCommand runs a subcommand under a test root that carries the
// persistent --json flag, capturing combined output.
func executeCommand(t *testing.T, cmd *cobra.Command, jsonMode bool, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{
		Use:           "stencil",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", jsonMode, "Output in JSON format")
	root.AddCommand(cmd)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"stencil", "generate", "list", "show", "init", "serve"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\noutput: %s", want, output)
		}
	}
}

func TestRootCommandJSONNoSubcommand(t *testing.T) {
	cmd := newRootCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--json"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\noutput: %s", err, buf.String())
	}
	if _, ok := result["error"]; !ok {
		t.Error("JSON output missing 'error' field")
	}
}

func TestJSONFlagIsPersistent(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("json") == nil {
		t.Fatal("--json flag should be a persistent flag")
	}
}

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	version, commit, date = "dev", "none", "unknown"
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q", got, "dev")
	}

	version, commit, date = "1.2.0", "abcdef1234567890", "2026-02-01"
	got := buildVersion()
	if !strings.Contains(got, "1.2.0") || !strings.Contains(got, "abcdef1") {
		t.Errorf("buildVersion() = %q, want version and short commit", got)
	}
	if strings.Contains(got, "abcdef12") {
		t.Errorf("buildVersion() = %q, commit should be truncated to 7 chars", got)
	}
}
