package manifest

import (
	"errors"
	"fmt"

	"github.com/noders-team/go-manifest/internal/linefold"
)

// Errors wrapped by FormatError when decoding.
var (
	// ErrMalformedLine is returned for an attribute line without the ": "
	// separator.
	ErrMalformedLine = errors.New("malformed attribute line")

	// ErrOrphanContinuation is returned for a continuation line at the start
	// of the input or directly after a blank line.
	ErrOrphanContinuation = linefold.ErrOrphanContinuation

	// ErrDuplicateHeader is returned when a name repeats within one section
	// and DuplicateReject is in effect.
	ErrDuplicateHeader = errors.New("duplicate header")

	// ErrEmptyHeader is returned for a line that starts with the separator.
	ErrEmptyHeader = errors.New("empty header name")

	// ErrInvalidUTF8 is returned for a logical line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrControlCharacter is returned for a logical line holding a carriage
	// return that is not part of a line terminator, or a NUL.
	ErrControlCharacter = errors.New("carriage return or NUL inside line")
)

// Errors wrapped by AttributeError when encoding.
var (
	ErrInvalidHeader = errors.New("invalid header name")
	ErrInvalidValue  = errors.New("invalid value")
)

// Configuration errors.
var (
	ErrLineLength = errors.New("manifest: max line length too small")
	ErrLineEnding = errors.New("manifest: unsupported line ending")
)

// FormatError reports input that does not follow the manifest grammar.
type FormatError struct {
	// Line is the physical line, counted from 1, where the offending
	// logical line starts.
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("manifest: line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ValueTypeError is returned by DefaultEncode for a value that is neither a
// string nor a bool.
type ValueTypeError struct {
	Key  string
	Type string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("manifest: key %q has value of type %s, expected string or bool", e.Key, e.Type)
}

// AttributeError reports an attribute that cannot be written.
type AttributeError struct {
	Key    string
	Err    error
	Reason string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("manifest: attribute %q: %v: %s", e.Key, e.Err, e.Reason)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
