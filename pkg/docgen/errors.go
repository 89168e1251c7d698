package docgen

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies why a run failed.
type ErrorKind int

// Failure kinds. Every kind aborts the whole run.
const (
	ErrReadAction ErrorKind = iota + 1
	ErrParseAction
	ErrReadDocument
	ErrWriteDocument
	ErrStaleDocuments
)

func (k ErrorKind) String() string {
	switch k {
	case ErrReadAction:
		return "Error reading action file"
	case ErrParseAction:
		return "Error parsing action file"
	case ErrReadDocument:
		return "Error reading markdown file"
	case ErrWriteDocument:
		return "Error writing markdown file"
	case ErrStaleDocuments:
		return "Documentation is out of date"
	default:
		return "Error"
	}
}

// Error is returned by Runner.Run. Its message is the user-facing form
// "<kind>: <cause>".
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error for errors.Cause.
func (e *Error) Cause() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, a docgen *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
