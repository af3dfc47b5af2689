package consoles

import (
	"errors"

	"go.starlark.net/starlark"
)

// EvalError is a fault inside one evaluated snippet. It does not abort the
// run; bindings made before the fault are kept.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Backtrace returns the Starlark backtrace when there is one, else the
// plain message.
func (e *EvalError) Backtrace() string {
	var evalErr *starlark.EvalError
	if errors.As(e.Err, &evalErr) {
		return evalErr.Backtrace()
	}
	return e.Err.Error()
}
