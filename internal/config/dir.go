package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the stencil global configuration directory.
//
// Resolution:
//   - $STENCIL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/stencil if set (respects XDG on any platform)
//   - %AppData%/stencil on Windows
//   - ~/.config/stencil on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("STENCIL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stencil")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "stencil")
		}
	}

	// macOS and Linux: ~/.config/stencil
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stencil")
}

// GlobalModelsDir returns the user-global model library directory, consulted
// after the workspace models directory. Empty when no config dir resolves.
func GlobalModelsDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "models")
}
