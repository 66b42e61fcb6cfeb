package model

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// ErrNotFound is returned when no model file matches a requested name.
var ErrNotFound = errors.New("model not found")

// Source labels for resolved models.
const (
	SourceWorkspace = "workspace"
	SourceGlobal    = "global"
)

// Info provides model metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Args        int    `json:"args"`
	Source      string `json:"source"`
}

// library root: a filesystem plus the source label it resolves under.
type root struct {
	fsys   fs.FS
	source string
}

// Library resolves models by name across one or more directory roots.
// Resolution order: workspace first, then the user's global library.
// Models are loaded lazily per call, so template edits are picked up without
// rebuilding the Library.
type Library struct {
	roots []root
}

// NewLibrary creates a Library over a workspace models directory and an
// optional global one. Either filesystem may be nil.
func NewLibrary(workspace, global fs.FS) *Library {
	lib := &Library{}
	if workspace != nil {
		lib.roots = append(lib.roots, root{fsys: workspace, source: SourceWorkspace})
	}
	if global != nil {
		lib.roots = append(lib.roots, root{fsys: global, source: SourceGlobal})
	}
	return lib
}

// Load resolves and parses the model with the given name (file stem).
// Returns an error wrapping ErrNotFound if no root contains the name.
func (l *Library) Load(name string) (*Model, error) {
	for _, r := range l.roots {
		filename, err := findStem(r.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("listing models directory: %w", err)
		}
		if filename == "" {
			continue
		}

		data, err := fs.ReadFile(r.fsys, filename)
		if err != nil {
			return nil, fmt.Errorf("reading model %s: %w", filename, err)
		}

		m, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		m.Source = r.source
		return m, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// List returns metadata for every model across all roots, sorted by name.
// On a name clash the earlier root wins (workspace overrides global).
// Models that fail to parse are skipped.
func (l *Library) List() ([]Info, error) {
	seen := make(map[string]bool)
	var infos []Info

	for _, r := range l.roots {
		entries, err := fs.ReadDir(r.fsys, ".")
		if err != nil {
			return nil, fmt.Errorf("listing models directory: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := stem(entry.Name())
			if seen[name] {
				continue
			}

			data, err := fs.ReadFile(r.fsys, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("reading model %s: %w", entry.Name(), err)
			}
			m, err := Parse(name, data)
			if err != nil {
				continue
			}

			seen[name] = true
			infos = append(infos, Info{
				Name:        name,
				Description: m.Description,
				Args:        m.RequiredArgs(),
				Source:      r.source,
			})
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// findStem returns the directory entry whose stem matches name, or "" when
// absent. Entries come back sorted from fs.ReadDir, and the last match wins,
// mirroring the last-loaded-wins rule of the image store.
func findStem(fsys fs.FS, name string) (string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", err
	}

	match := ""
	for _, entry := range entries {
		if !entry.IsDir() && stem(entry.Name()) == name {
			match = entry.Name()
		}
	}
	return match, nil
}

// stem strips the extension from a file name.
func stem(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
