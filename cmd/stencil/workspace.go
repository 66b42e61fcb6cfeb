package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/coppervale/stencil/internal/config"
	"github.com/coppervale/stencil/internal/gen"
	"github.com/coppervale/stencil/internal/output"
)

// buildGenerator assembles a generator from the workspace rooted at dir.
// Workspace models shadow global models with the same stem; the image
// store is loaded eagerly so missing assets fail before any output is
// produced. resolveImages forces image resolution on regardless of the
// workspace config.
func buildGenerator(dir string, resolveImages bool) (*gen.Generator, config.Config, error) {
	cfg, err := config.LoadWorkspace(dir)
	if err != nil {
		return nil, cfg, output.NewSystemErrorWithCause("failed to load workspace config", err)
	}

	modelsDir := filepath.Join(dir, cfg.ModelsDir)
	if _, err := os.Stat(modelsDir); err != nil {
		if os.IsNotExist(err) {
			return nil, cfg, output.NewUserError(fmt.Sprintf("no models directory at %s. Run 'stencil init' to create a workspace", modelsDir))
		}
		return nil, cfg, output.NewSystemErrorWithCause("failed to read models directory", err)
	}

	var workspace, global fs.FS
	workspace = os.DirFS(modelsDir)
	if globalDir := config.GlobalModelsDir(); globalDir != "" {
		if _, statErr := os.Stat(globalDir); statErr == nil {
			global = os.DirFS(globalDir)
		}
	}
	var images fs.FS
	imagesDir := filepath.Join(dir, cfg.ImagesDir)
	if _, err := os.Stat(imagesDir); err == nil {
		images = os.DirFS(imagesDir)
	}

	var opts []gen.Option
	if resolveImages || cfg.ResolveImages {
		opts = append(opts, gen.WithImageResolution())
	}

	generator, err := gen.FromFS(workspace, global, images, opts...)
	if err != nil {
		return nil, cfg, output.NewSystemErrorWithCause("failed to load image store", err)
	}
	return generator, cfg, nil
}
