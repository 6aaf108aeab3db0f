package lies

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/liekit/pkg/async"
	"github.com/dmitrymomot/liekit/pkg/errcapture"
	"github.com/dmitrymomot/liekit/pkg/hashify"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/requestid"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

// Client reads the environment of one browser.
type Client interface {
	// Read returns the main-thread signals. Voices are read separately.
	Read(ctx context.Context) (Signals, error)
	// Voices returns the speech-synthesis roster, waiting for it to load if
	// needed. A nil roster means speech synthesis is unsupported.
	Voices(ctx context.Context) ([]signals.Voice, error)
	// Workers returns the environment hosting worker contexts, or nil.
	Workers() workerscope.Environment
}

// Runner drives complete passes.
type Runner struct {
	engine  *Engine
	workers *workerscope.Orchestrator
	log     *slog.Logger
}

// NewRunner creates a runner. A nil orchestrator gets the default one.
func NewRunner(engine *Engine, workers *workerscope.Orchestrator, opts ...Option) *Runner {
	o := applyOptions(opts)
	if workers == nil {
		workers = workerscope.New(workerscope.DefaultConfig(), workerscope.WithLogger(o.log))
	}
	return &Runner{engine: engine, workers: workers, log: o.log.With(logger.Component("lies"))}
}

// Run performs one pass. The voice roster and the worker walk run
// concurrently; every failure degrades the affected signal to absent and
// lands in the verdict's error report. Run never fails.
func (r *Runner) Run(ctx context.Context, c Client) Verdict {
	start := time.Now()
	errs := errcapture.New(r.log)

	id := requestid.FromContext(ctx)
	if id == "" {
		id = requestid.New()
	}
	log := r.log.With(logger.PassID(id))

	if c == nil {
		errs.Capture(ErrNoClient)
		return r.finish(ctx, log, r.engine.Evaluate(ctx, Signals{}, nil, errs), id, start)
	}

	voicesF := async.Async(ctx, c, func(ctx context.Context, c Client) ([]signals.Voice, error) {
		return async.Bounded(ctx, r.engine.cfg.VoiceTimeout, c.Voices)
	})
	workerF := async.Async(ctx, c.Workers(), func(ctx context.Context, env workerscope.Environment) (*workerscope.Result, error) {
		if env == nil {
			return nil, workerscope.ErrNoWorkerScope
		}
		res, err := r.workers.Run(ctx, env, errs)
		if err != nil {
			return nil, err
		}
		return &res, nil
	})

	s, err := c.Read(ctx)
	if err != nil {
		errs.Capture(err, "signals")
	}

	voices, err := voicesF.Await()
	switch {
	case err == nil:
		s.Voices = voices
	case errors.Is(err, async.ErrTimeout):
		s.Voices = nil
		log.DebugContext(ctx, "voices not loaded in time")
	default:
		s.Voices = nil
		errs.Capture(err, "speechSynthesis")
	}

	worker, err := workerF.Await()
	if err != nil && !errors.Is(err, workerscope.ErrNoWorkerScope) {
		errs.Capture(err, "workers failed or blocked by client")
	}

	return r.finish(ctx, log, r.engine.Evaluate(ctx, s, worker, errs), id, start)
}

func (r *Runner) finish(ctx context.Context, log *slog.Logger, v Verdict, id string, start time.Time) Verdict {
	v.ID = id
	v.CreatedAt = start.UTC()
	if h, err := hashify.Hash(v.fingerprint()); err == nil {
		v.Hash = h
	} else {
		log.WarnContext(ctx, "verdict hash failed", logger.Error(err))
	}
	v.Elapsed = time.Since(start)

	log.InfoContext(ctx, "pass finished",
		logger.Family(v.System),
		logger.Passed(v.Passed),
		logger.Hash(v.Hash),
		logger.Duration(v.Elapsed),
	)
	return v
}
