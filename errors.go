package airp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidNumber signals text given to Number that is not a JSON
	// number.
	ErrInvalidNumber = errors.New("not a JSON number")
	// ErrUnsupportedType signals a Go value FromGo has no node for.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrMixedArray signals a Go slice whose elements do not share one
	// kind, which an Array cannot hold.
	ErrMixedArray = errors.New("array elements differ in kind")
	// ErrCycle signals a Go value FromGo reaches again through itself.
	ErrCycle = errors.New("encountered a cycle")
)

// ValueError captures information on values that can not become a node.
type ValueError struct {
	// Path is the dotted path to the value inside a FromGo argument;
	// it is empty for top-level values.
	Path  string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("airp: %s: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("airp: %s (at %s): %v", e.Value, e.Path, e.Err)
}

// Cause returns the underlying error for errors.Cause.
func (e *ValueError) Cause() error { return e.Err }

func (e *ValueError) Unwrap() error { return e.Err }
