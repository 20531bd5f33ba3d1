package oxide

import (
	"errors"
	"fmt"
)

// Unwrap failure kinds. Each wrong unwrap panics with an *UnwrapError
// wrapping exactly one of these, so callers match the kind with
// errors.Is instead of parsing message text.
var (
	// ErrUnwrapNone marks Unwrap/Expect called on a None option.
	ErrUnwrapNone = errors.New("oxide: unwrap of a none option")
	// ErrUnwrapErr marks Unwrap/Expect called on an err result.
	ErrUnwrapErr = errors.New("oxide: unwrap of an err result")
	// ErrUnwrapOk marks UnwrapErr/ExpectErr called on an ok result.
	ErrUnwrapOk = errors.New("oxide: unwrap-err of an ok result")
)

// UnwrapError is the panic payload of the unwrap family.
type UnwrapError struct {
	kind error
	msg  string
}

func newUnwrapError(kind error, msg string) *UnwrapError {
	return &UnwrapError{kind: kind, msg: msg}
}

func (e *UnwrapError) Error() string {
	if e.msg == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.msg)
}

// Unwrap exposes the kind to errors.Is / errors.As.
func (e *UnwrapError) Unwrap() error {
	return e.kind
}

// Message returns the caller-supplied Expect message, if any.
func (e *UnwrapError) Message() string {
	return e.msg
}
