package errors

import (
	"errors"
	"fmt"

	"github.com/SkwalExe/tui-markup/pkg/item"
)

// ErrorKind classifies why generation failed
type ErrorKind int

const (
	// InvalidTag means a tag matched neither the built-in grammar nor the
	// custom resolver.
	InvalidTag ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidTag:
		return "invalid tag"
	default:
		return "unknown"
	}
}

// Code maps the kind onto the shared error codes
func (k ErrorKind) Code() ErrorCode {
	switch k {
	case InvalidTag:
		return ErrInvalidTag
	default:
		return ErrUnknown
	}
}

// GenError reports the first tag that could not be resolved. Span is the tag
// exactly as it appeared in the markup.
type GenError struct {
	Span item.TaggedSpan
	kind ErrorKind
}

// NewGenError creates a GenError of the given kind for span
func NewGenError(span item.TaggedSpan, kind ErrorKind) *GenError {
	return &GenError{Span: span, kind: kind}
}

// Kind returns the error classification
func (e *GenError) Kind() ErrorKind {
	return e.kind
}

// Code returns the shared error code for the kind
func (e *GenError) Code() ErrorCode {
	return e.kind.Code()
}

func (e *GenError) Error() string {
	return fmt.Sprintf("%s %q at %s", e.kind, e.Span.Fragment, e.Span.Pos)
}

// Is matches *MarkupError targets by code, so
// errors.Is(err, errors.New(errors.ErrInvalidTag, "")) holds for invalid tags.
func (e *GenError) Is(target error) bool {
	var markupErr *MarkupError
	if errors.As(target, &markupErr) {
		return markupErr.Code == e.Code()
	}
	return false
}

// AsGenError extracts a *GenError from err's chain
func AsGenError(err error) (*GenError, bool) {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
