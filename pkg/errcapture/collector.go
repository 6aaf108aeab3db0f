package errcapture

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync"

	"github.com/dmitrymomot/liekit/pkg/hashify"
	"github.com/dmitrymomot/liekit/pkg/logger"
)

var trustedNames = map[string]bool{
	"Error":             true,
	"EvalError":         true,
	"InternalError":     true,
	"RangeError":        true,
	"ReferenceError":    true,
	"SyntaxError":       true,
	"TypeError":         true,
	"URIError":          true,
	"InvalidStateError": true,
	"SecurityError":     true,
}

var innerSpace = regexp.MustCompile(`.+(\s).+`)

// Captured is a sanitized error. Empty fields were not trusted.
type Captured struct {
	TrustedName    string `json:"trustedName,omitempty" yaml:"trustedName,omitempty"`
	TrustedMessage string `json:"trustedMessage,omitempty" yaml:"trustedMessage,omitempty"`
}

// Report is the captured error list with its content hash.
type Report struct {
	Data []Captured `json:"data" yaml:"data"`
	Hash string     `json:"hash" yaml:"hash"`
}

// Collector accumulates captured errors for one pass.
type Collector struct {
	mu     sync.Mutex
	errors []Captured
	log    *slog.Logger
}

// New creates an empty collector. A nil logger discards output.
func New(log *slog.Logger) *Collector {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Collector{
		errors: make([]Captured, 0),
		log:    log.With(logger.Component("errcapture")),
	}
}

// Capture sanitizes err and records it. A custom message, when given, is
// appended to a trusted message in brackets. Nil errors are ignored.
func (c *Collector) Capture(err error, custom ...string) {
	if err == nil {
		return
	}
	c.log.Debug("error captured", logger.Error(err))

	captured := Sanitize(err, custom...)

	c.mu.Lock()
	c.errors = append(c.errors, captured)
	c.mu.Unlock()
}

// Attempt runs fn and captures its error.
func (c *Collector) Attempt(fn func() error, custom ...string) {
	c.Capture(fn(), custom...)
}

// Recover captures a panic. It must be deferred directly:
//
//	defer c.Recover("voices")
func (c *Collector) Recover(custom ...string) {
	if r := recover(); r != nil {
		c.Capture(&PanicError{Value: r}, custom...)
	}
}

// Errors returns a copy of the errors captured so far.
func (c *Collector) Errors() []Captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Captured, len(c.errors))
	copy(out, c.errors)
	return out
}

// Len returns the number of captured errors.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// Drain returns the captured errors and resets the collector.
func (c *Collector) Drain() []Captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.errors
	c.errors = make([]Captured, 0)
	return out
}

// Report builds the captured-errors report for the current contents.
func (c *Collector) Report() (Report, error) {
	return NewReport(c.Errors())
}

// NewReport hashes data into a Report. On a hash failure the report still
// carries the data.
func NewReport(data []Captured) (Report, error) {
	hash, err := hashify.Hash(data)
	if err != nil {
		return Report{Data: data}, err
	}
	return Report{Data: data, Hash: hash}, nil
}

// Sanitize converts err into its trusted form.
func Sanitize(err error, custom ...string) Captured {
	name, message := describe(err)

	var out Captured
	if trustedNames[name] {
		out.TrustedName = name
	}
	if innerSpace.MatchString(message) {
		out.TrustedMessage = message
		if len(custom) > 0 && custom[0] != "" {
			out.TrustedMessage = message + " [" + custom[0] + "]"
		}
	}
	return out
}

// describe maps an error to a browser-style name and message. Go errors
// without a name are reported as "Error"; deadline and cancellation are
// timing artifacts and get no trusted name.
func describe(err error) (string, string) {
	var named Named
	if errors.As(err, &named) {
		return named.ErrorName(), named.ErrorMessage()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "", err.Error()
	}
	return "Error", err.Error()
}
