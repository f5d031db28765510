package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so callers can branch on the category
// instead of matching message substrings.
type Kind int

const (
	// KindValidation covers malformed or missing input, caught before any
	// external call is made.
	KindValidation Kind = iota
	// KindProvider covers LLM calls that failed after exhausting retries.
	KindProvider
	// KindSchema covers LLM responses that are not valid JSON or violate
	// the expected structure.
	KindSchema
	// KindPersistence covers storage write failures.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProvider:
		return "provider"
	case KindSchema:
		return "schema"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is a tagged error carrying its kind and, optionally, the underlying
// cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind without a cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and a message to an underlying cause. A nil cause
// yields nil so call sites can wrap unconditionally.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err, walking the cause chain. Errors that never
// passed through this package report ok=false.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err (or any error in its chain) carries the given
// kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
