package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ModelsDir != "models" {
		t.Errorf("ModelsDir = %q, want %q", cfg.ModelsDir, "models")
	}
	if cfg.ImagesDir != "images" {
		t.Errorf("ImagesDir = %q, want %q", cfg.ImagesDir, "images")
	}
	if cfg.ResolveImages {
		t.Error("ResolveImages = true, want false by default")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, File)
	content := "models_dir: templates\nimages_dir: assets\nresolve_images: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ModelsDir != "templates" {
		t.Errorf("ModelsDir = %q, want %q", cfg.ModelsDir, "templates")
	}
	if cfg.ImagesDir != "assets" {
		t.Errorf("ImagesDir = %q, want %q", cfg.ImagesDir, "assets")
	}
	if !cfg.ResolveImages {
		t.Error("ResolveImages = false, want true")
	}
}

func TestLoadPartialFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, File)
	if err := os.WriteFile(path, []byte("models_dir: templates\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ImagesDir != DefaultImagesDir {
		t.Errorf("ImagesDir = %q, want default %q", cfg.ImagesDir, DefaultImagesDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, File)
	if err := os.WriteFile(path, []byte("models_dir: [broken\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() succeeded, want parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %v, want parsing config with path", err)
	}
}

func TestLoadWorkspaceMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadWorkspace(t.TempDir())
	if err != nil {
		t.Fatalf("LoadWorkspace() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadWorkspace() = %+v, want defaults", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Config{ModelsDir: "m", ImagesDir: "i", ResolveImages: true}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, File)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}
