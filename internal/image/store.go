// Package image provides the named asset store consumed during generation.
//
// An image is an opaque payload: raw bytes under a name (the file stem).
// Nothing is decoded or validated, so the store holds SVG fragments, icons,
// or any other content a model argument may reference.
package image

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// ErrNotFound is returned when a requested image name is not in the store.
var ErrNotFound = errors.New("image not found")

// Store is a name-to-content mapping loaded from a directory.
// It is immutable after loading and safe for concurrent reads.
type Store struct {
	images map[string][]byte
}

// New returns an empty Store, for workspaces without an images directory.
func New() *Store {
	return &Store{images: map[string][]byte{}}
}

// Load reads every regular file directly in fsys (non-recursive) into a
// Store, keyed by file stem. Entries arrive sorted from fs.ReadDir, so on a
// stem clash the last one wins, deterministically.
//
// An unreadable file aborts the whole load; a half-populated store would hide
// misconfigured permissions.
func Load(fsys fs.FS) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing images directory: %w", err)
	}

	store := New()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", entry.Name(), err)
		}
		store.images[stem(entry.Name())] = data
	}

	return store, nil
}

// Get returns the content of the named image.
// Returns an error wrapping ErrNotFound for unknown names.
func (s *Store) Get(name string) ([]byte, error) {
	data, ok := s.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, nil
}

// Lookup returns the content of the named image and whether it exists.
func (s *Store) Lookup(name string) ([]byte, bool) {
	data, ok := s.images[name]
	return data, ok
}

// Names returns the stored image names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	return len(s.images)
}

// stem strips the extension from a file name.
func stem(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
