// Package config provides workspace and global configuration for stencil.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the workspace configuration file name.
const File = "stencil.yaml"

// Default directory names used when the workspace has no config file.
const (
	DefaultModelsDir = "models"
	DefaultImagesDir = "images"
)

// Config holds the workspace settings: the two directory roots and the
// image-resolution toggle.
type Config struct {
	// ModelsDir is the directory of model templates, one file per model.
	ModelsDir string `yaml:"models_dir"`

	// ImagesDir is the directory of image assets, one file per image.
	ImagesDir string `yaml:"images_dir"`

	// ResolveImages substitutes a loaded image's content for any argument
	// that exactly names it.
	ResolveImages bool `yaml:"resolve_images"`
}

// Default returns the configuration used when no stencil.yaml exists.
func Default() Config {
	return Config{
		ModelsDir: DefaultModelsDir,
		ImagesDir: DefaultImagesDir,
	}
}

// Load reads and parses a config file. Missing fields fall back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = DefaultModelsDir
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = DefaultImagesDir
	}
	return cfg, nil
}

// LoadWorkspace loads dir/stencil.yaml if it exists, or the defaults.
func LoadWorkspace(dir string) (Config, error) {
	path := filepath.Join(dir, File)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a config for writing to stencil.yaml.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serializing config: %w", err)
	}
	return data, nil
}
