package input

import (
	"errors"
	"fmt"
)

// Error kinds. Every validation failure wraps exactly one of them.
var (
	// ErrType marks a value of the wrong data type, e.g. a non-numeric position
	ErrType = errors.New("type error")
	// ErrValue marks a well-typed but unacceptable value: wrong shape,
	// out-of-range position, zero magnitude or no forces at all
	ErrValue = errors.New("value error")
)

// ValidationError describes a rejected input value
type ValidationError struct {
	Kind  error  // ErrType or ErrValue
	Field string // length, loads, supports, ...
	Index int    // item index within Field, -1 when not applicable
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s[%d]: %s", e.Kind, e.Field, e.Index, e.Msg)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func typeError(field string, index int, format string, args ...any) error {
	return &ValidationError{Kind: ErrType, Field: field, Index: index, Msg: fmt.Sprintf(format, args...)}
}

func valueError(field string, index int, format string, args ...any) error {
	return &ValidationError{Kind: ErrValue, Field: field, Index: index, Msg: fmt.Sprintf(format, args...)}
}
