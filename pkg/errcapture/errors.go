package errcapture

import (
	"errors"
	"fmt"
)

// ErrPanic marks a recovered panic.
var ErrPanic = errors.New("errcapture: recovered panic")

// NamedError is an error reported by a browser, carrying its constructor name.
type NamedError struct {
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

func (e *NamedError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// ErrorName implements Named.
func (e *NamedError) ErrorName() string { return e.Name }

// ErrorMessage implements Named.
func (e *NamedError) ErrorMessage() string { return e.Message }

// Named is implemented by errors that carry a browser-style error name.
type Named interface {
	error
	ErrorName() string
	ErrorMessage() string
}

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrPanic, err}
	}
	return []error{ErrPanic}
}
