package workerscope

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/liekit/pkg/async"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/uaplatform"
)

// Orchestrator obtains a user agent from the most capable worker context
// available.
type Orchestrator struct {
	cfg Config
	log *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// New creates an orchestrator. Zero timeouts in cfg fall back to DefaultConfig.
func New(cfg Config, opts ...Option) *Orchestrator {
	def := DefaultConfig()
	if cfg.ServiceTimeout <= 0 {
		cfg.ServiceTimeout = def.ServiceTimeout
	}
	if cfg.WorkerTimeout <= 0 {
		cfg.WorkerTimeout = def.WorkerTimeout
	}
	o := &Orchestrator{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With(logger.Component("workerscope"))
	return o
}

// Run tries service, shared and dedicated contexts strictly in that order and
// stops at the first one that answers with a user agent. Tamper and exchange
// failures are handed to errs and never stop the walk; timeouts are silent.
// When nothing answers it returns the attempt log with ErrNoWorkerScope.
func (o *Orchestrator) Run(ctx context.Context, env Environment, errs Capturer) (Result, error) {
	if errs == nil {
		errs = discard{}
	}

	start := time.Now()
	m := newMachine()
	var res Result

	for {
		t, ok := m.attempting()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return res, errors.Join(ErrNoWorkerScope, err)
		}

		reply, attempt, launched := o.attempt(ctx, env, t, errs)
		if launched {
			res.Attempts = append(res.Attempts, attempt)
		}

		ev := eventFallback
		if attempt.Outcome == OutcomeResolved {
			ev = eventResolve
			res.Reply = reply
		}
		if err := m.fire(ev); err != nil {
			errs.Capture(err)
			break
		}
	}

	if !m.resolved() {
		o.log.DebugContext(ctx, "no worker scope", logger.Duration(time.Since(start)))
		return res, ErrNoWorkerScope
	}

	last := res.Attempts[len(res.Attempts)-1]
	res.Probe = Probe{Type: last.Type, UserAgent: res.Reply.UserAgent, Elapsed: time.Since(start)}
	res.Platform = res.Reply.Platform
	res.System = signals.System(res.Reply.UserAgent)
	res.Canvas2D = Canvas2D{DataURI: res.Reply.Canvas2D}
	if id, err := uaplatform.Extract(res.Reply.UserAgent); err == nil {
		res.Device = id.Description
	}

	o.log.DebugContext(ctx, "worker scope resolved",
		logger.ContextType(string(res.Type)),
		logger.Family(res.System),
		logger.Duration(res.Elapsed),
	)
	return res, nil
}

// attempt runs one context. launched is false when the context type is not
// supported, in which case no attempt is recorded.
func (o *Orchestrator) attempt(ctx context.Context, env Environment, t ContextType, errs Capturer) (Reply, Attempt, bool) {
	start := time.Now()
	a := Attempt{Type: t}
	log := o.log.With(logger.ContextType(string(t)))

	c, err := env.Capability(ctx, t)
	if err != nil {
		errs.Capture(err, string(t)+" worker")
		a.Outcome, a.Elapsed = OutcomeFailed, time.Since(start)
		return Reply{}, a, true
	}
	if !c.Supported {
		log.DebugContext(ctx, "worker context unsupported")
		return Reply{}, a, false
	}
	if err := Validate(t, c); err != nil {
		log.WarnContext(ctx, "worker context tampered", logger.Error(err))
		errs.Capture(err)
		a.Outcome, a.Elapsed = OutcomeTampered, time.Since(start)
		return Reply{}, a, true
	}

	reply, err := async.Bounded(ctx, o.cfg.timeout(t), func(ctx context.Context) (Reply, error) {
		return env.Exchange(ctx, t, FingerprintRequest)
	})
	a.Elapsed = time.Since(start)

	switch {
	case errors.Is(err, async.ErrTimeout):
		a.Outcome = OutcomeTimeout
	case err != nil:
		errs.Capture(err, string(t)+" worker")
		a.Outcome = OutcomeFailed
	case reply.UserAgent == "":
		a.Outcome = OutcomeEmpty
	default:
		a.Outcome = OutcomeResolved
	}
	log.DebugContext(ctx, "worker attempt finished",
		slog.String("outcome", string(a.Outcome)),
		logger.Duration(a.Elapsed),
	)
	return reply, a, true
}

type discard struct{}

func (discard) Capture(error, ...string) {}
