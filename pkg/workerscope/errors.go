package workerscope

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWorkerScope means no context produced a usable user agent. Callers
	// treat the worker signal as absent.
	ErrNoWorkerScope = errors.New("workerscope: no worker context answered")
	ErrUnknownType   = errors.New("workerscope: unknown context type")
)

// TamperError reports a context whose constructor does not present the
// expected built-in name.
type TamperError struct {
	Type     ContextType
	Expected string
	Got      string
}

func (e *TamperError) Error() string {
	return fmt.Sprintf("%s tampered with by client: constructor %q, want %q", e.Expected, e.Got, e.Expected)
}

// ErrorName reports the browser-style name used when the error is captured.
func (e *TamperError) ErrorName() string { return "Error" }

// ErrorMessage implements errcapture.Named.
func (e *TamperError) ErrorMessage() string {
	return e.Expected + " tampered with by client"
}

// IsTamperError reports whether err is a TamperError.
func IsTamperError(err error) bool {
	var e *TamperError
	return errors.As(err, &e)
}

// TransitionError reports an event the orchestrator state machine does not
// accept in its current state.
type TransitionError struct {
	State string
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("workerscope: no transition from %q on %q", e.State, e.Event)
}
