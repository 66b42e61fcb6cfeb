package gen

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	"github.com/coppervale/stencil/internal/image"
	"github.com/coppervale/stencil/internal/model"
)

// Generator materializes named models against argument lists.
// It holds fixed references to a model library and an image store and keeps
// no state across calls: the same model and arguments always produce
// byte-identical output.
type Generator struct {
	library       *model.Library
	images        *image.Store
	resolveImages bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithImageResolution enables image-content substitution: an argument string
// that exactly names a loaded image is replaced by the image's raw content.
func WithImageResolution() Option {
	return func(g *Generator) {
		g.resolveImages = true
	}
}

// New creates a Generator over a model library and an image store.
// If images is nil, an empty store is used.
func New(library *model.Library, images *image.Store, opts ...Option) *Generator {
	if images == nil {
		images = image.New()
	}
	g := &Generator{library: library, images: images}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromFS builds a Generator directly from filesystem roots: a workspace
// models root, an optional global models root, and an optional images root.
// The image root is loaded eagerly; either optional root may be nil.
func FromFS(workspace, global, images fs.FS, opts ...Option) (*Generator, error) {
	store := image.New()
	if images != nil {
		var err error
		store, err = image.Load(images)
		if err != nil {
			return nil, err
		}
	}
	return New(model.NewLibrary(workspace, global), store, opts...), nil
}

// Library returns the generator's model library.
func (g *Generator) Library() *model.Library {
	return g.library
}

// Images returns the generator's image store.
func (g *Generator) Images() *image.Store {
	return g.images
}

// Generate resolves the named model and returns the materialized output.
func (g *Generator) Generate(name string, args []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.GenerateTo(&buf, name, args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateTo resolves the named model and writes the materialized output to
// w. The sink is an append-only stream: on error, partial output may already
// have been written. Callers needing an all-or-nothing file should use
// GenerateFile, which buffers before committing.
func (g *Generator) GenerateTo(w io.Writer, name string, args []string) error {
	m, err := g.library.Load(name)
	if err != nil {
		return err
	}
	return g.Render(w, m, args)
}

// GenerateFile materializes the named model into the file at path.
// Output is buffered fully before anything touches the filesystem, then
// committed with an atomic rename, so no partial or corrupt file is ever
// visible at path. If the file exists and force is false, returns
// ErrOutputExists.
func (g *Generator) GenerateFile(path, name string, args []string, force bool) error {
	out, err := g.Generate(name, args)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Render writes the materialized form of an already-loaded model to w.
// Lines are emitted in source order, one output line per model line, each
// followed by a newline. The model, store, and argument list are never
// mutated.
func (g *Generator) Render(w io.Writer, m *model.Model, args []string) error {
	for _, line := range m.Lines {
		if !line.Placeholder {
			if err := writeLine(w, []byte(line.Text)); err != nil {
				return err
			}
			continue
		}

		if line.ArgIndex >= len(args) {
			return &ArgIndexError{
				Model: m.Name,
				Line:  line.Num,
				Index: line.ArgIndex,
				Have:  len(args),
			}
		}

		arg := args[line.ArgIndex]
		if g.resolveImages {
			if content, ok := g.images.Lookup(arg); ok {
				if err := writeLine(w, content); err != nil {
					return err
				}
				continue
			}
		}

		if err := writeLine(w, []byte(arg)); err != nil {
			return err
		}
	}

	return nil
}

// writeLine writes content followed by the line terminator.
func writeLine(w io.Writer, content []byte) error {
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if _, err := w.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
