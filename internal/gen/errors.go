package gen

import (
	"errors"
	"fmt"
)

// ErrOutputExists is returned by GenerateFile when the destination already
// exists and force was not set.
var ErrOutputExists = errors.New("output file already exists")

// ArgIndexError reports a placeholder whose argument index is outside the
// supplied argument list. It carries the model's line number so template
// authors can find the offending placeholder.
type ArgIndexError struct {
	Model string
	Line  int
	Index int
	Have  int
}

// Error implements the error interface.
func (e *ArgIndexError) Error() string {
	return fmt.Sprintf("model %s line %d: argument %d not provided (have %d)",
		e.Model, e.Line, e.Index, e.Have)
}
