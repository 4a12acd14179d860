package window

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowTypeNotFound means the key resolved neither through the
	// registry nor through any fallback resolver.
	ErrWindowTypeNotFound = errors.New("window type not found")

	// ErrWindowInstantiationFailed means a kind was found but constructing it
	// did not yield a usable Window.
	ErrWindowInstantiationFailed = errors.New("window instantiation failed")

	// ErrDuplicateKey is returned when a registry is built with two entries
	// for the same key.
	ErrDuplicateKey = errors.New("duplicate window key")

	// ErrInvalidKey is returned for empty keys and registry keys containing
	// the qualifying separator.
	ErrInvalidKey = errors.New("invalid window key")
)

// PresentationError wraps a failure raised by the toolkit while showing a
// window. Unlike lookup failures it is returned to the caller.
type PresentationError struct {
	Key   string
	Modal bool
	Err   error
}

func (e *PresentationError) Error() string {
	mode := "show"
	if e.Modal {
		mode = "show modal"
	}
	return fmt.Sprintf("%s %q: %v", mode, e.Key, e.Err)
}

func (e *PresentationError) Unwrap() error { return e.Err }
