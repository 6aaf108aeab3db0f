package workerscope

import (
	"context"
	"time"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
)

// ReportedContext is what a page recorded for one worker context type.
// A nil Reply with no Error means the context never answered.
type ReportedContext struct {
	Constructor string                 `json:"constructor" yaml:"constructor"`
	Reply       *Reply                 `json:"reply,omitempty" yaml:"reply,omitempty"`
	Error       *errcapture.NamedError `json:"error,omitempty" yaml:"error,omitempty"`
	Latency     time.Duration          `json:"latency,omitempty" yaml:"latency,omitempty"`
}

// Reported replays worker observations submitted with a snapshot. Context
// types missing from the map are unsupported.
type Reported map[ContextType]ReportedContext

var _ Environment = Reported(nil)

func (r Reported) Capability(_ context.Context, t ContextType) (Capability, error) {
	rc, ok := r[t]
	if !ok {
		return Capability{}, nil
	}
	return Capability{Supported: true, Constructor: rc.Constructor}, nil
}

// Exchange replays the recorded answer after its latency. Contexts that never
// answered block until ctx is done, which the orchestrator reads as a timeout.
func (r Reported) Exchange(ctx context.Context, t ContextType, _ Request) (Reply, error) {
	rc, ok := r[t]
	if !ok {
		return Reply{}, ErrUnknownType
	}

	if rc.Latency > 0 {
		timer := time.NewTimer(rc.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-timer.C:
		}
	}

	switch {
	case rc.Error != nil:
		return Reply{}, rc.Error
	case rc.Reply != nil:
		return *rc.Reply, nil
	default:
		<-ctx.Done()
		return Reply{}, ctx.Err()
	}
}
