package browserprobe

import (
	"errors"
	"strings"

	"github.com/go-rod/rod"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
)

// scriptError turns a thrown JavaScript exception into a named error so the
// collector can keep its class name. Other errors are wrapped with ErrEval.
func scriptError(err error) error {
	var evalErr *rod.EvalError
	if !errors.As(err, &evalErr) || evalErr.RuntimeExceptionDetails == nil {
		return errors.Join(ErrEval, err)
	}

	d := evalErr.RuntimeExceptionDetails
	if d.Exception == nil {
		return &errcapture.NamedError{Name: "Error", Message: d.Text}
	}

	name := d.Exception.ClassName
	if name == "" {
		name = "Error"
	}
	msg, _, _ := strings.Cut(d.Exception.Description, "\n")
	msg = strings.TrimPrefix(msg, name+": ")
	return &errcapture.NamedError{Name: name, Message: msg}
}
