package lies

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

// Snapshot is a set of signals a page collected and submitted for checking.
// It doubles as a Client so submitted data runs through the same pass as a
// live browser.
type Snapshot struct {
	Signals  `yaml:",inline"`
	Contexts workerscope.Reported `json:"workers,omitempty" yaml:"workers,omitempty"`
}

var _ Client = (*Snapshot)(nil)

// Validate rejects values no browser reports.
func (s *Snapshot) Validate() error {
	var errs []error
	if s.MaxTouchPoints < 0 {
		errs = append(errs, fmt.Errorf("maxTouchPoints must not be negative, got %d", s.MaxTouchPoints))
	}
	if s.DeviceMemory != nil && *s.DeviceMemory < 0 {
		errs = append(errs, fmt.Errorf("deviceMemory must not be negative, got %v", *s.DeviceMemory))
	}
	if s.HardwareConcurrency != nil && *s.HardwareConcurrency < 0 {
		errs = append(errs, fmt.Errorf("hardwareConcurrency must not be negative, got %v", *s.HardwareConcurrency))
	}
	for t := range s.Contexts {
		if t.Constructor() == "" {
			errs = append(errs, fmt.Errorf("unknown worker context %q", t))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSnapshot}, errs...)...)
	}
	return nil
}

func (s *Snapshot) Read(context.Context) (Signals, error) {
	out := s.Signals
	out.Voices = nil
	return out, nil
}

func (s *Snapshot) Voices(context.Context) ([]signals.Voice, error) {
	return s.Signals.Voices, nil
}

func (s *Snapshot) Workers() workerscope.Environment {
	if len(s.Contexts) == 0 {
		return nil
	}
	return s.Contexts
}
