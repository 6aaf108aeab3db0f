package lies

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/uaplatform"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

// input is what every check sees. System and Core come from the primary
// user agent and are the reference all other signals are judged against.
type input struct {
	Signals
	system string
	core   string
	worker *workerscope.Result
	limit  float64
}

type check struct {
	name string
	run  func(in input) []Disagreement
}

// checks run in this order; each one is independent of the others.
var checks = []check{
	{"platform", checkPlatform},
	{"touch", checkTouch},
	{"deviceMemory", checkDeviceMemory},
	{"hardwareConcurrency", checkHardwareConcurrency},
	{"voices", checkVoices},
	{"worker", checkWorker},
}

// Engine cross-checks the signals of one pass.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// NewEngine creates an engine. Zero config values fall back to DefaultConfig.
func NewEngine(cfg Config, opts ...Option) *Engine {
	o := applyOptions(opts)
	return &Engine{
		cfg: cfg.withDefaults(),
		log: o.log.With(logger.Component("lies")),
	}
}

// Evaluate derives the identity from the primary user agent and records a
// disagreement for every signal that actively contradicts it. A nil worker
// result means the worker signal is absent. Panics in a check are captured
// in errs and the check is skipped. A nil errs gets a fresh collector.
// errs is drained into the verdict's error report, so a reused collector
// starts the next pass empty.
//
// Passed is true only when an identity was derived and nothing disagreed.
func (e *Engine) Evaluate(ctx context.Context, s Signals, worker *workerscope.Result, errs *errcapture.Collector) Verdict {
	if errs == nil {
		errs = errcapture.New(e.log)
	}

	v := Verdict{
		System:        signals.System(s.UserAgent),
		Core:          signals.Core(s.UserAgent),
		Disagreements: make([]Disagreement, 0),
		Worker:        worker,
	}
	if id, err := uaplatform.Extract(s.UserAgent); err == nil {
		v.Identity = &id
	} else {
		e.log.DebugContext(ctx, "no identity", logger.Error(err))
	}
	v.Readings = readings(s, worker)

	in := input{Signals: s, system: v.System, core: v.Core, worker: worker, limit: e.cfg.MobileLimit}
	for _, c := range checks {
		v.Disagreements = append(v.Disagreements, run(c, in, errs)...)
	}

	v.Passed = v.Identity != nil && len(v.Disagreements) == 0
	rep, err := errcapture.NewReport(errs.Drain())
	if err != nil {
		e.log.WarnContext(ctx, "error report hash failed", logger.Error(err))
	}
	v.Errors = rep

	e.log.DebugContext(ctx, "signals evaluated",
		logger.Family(v.System),
		logger.Passed(v.Passed),
		slog.Int("disagreements", len(v.Disagreements)),
	)
	return v
}

func run(c check, in input, errs *errcapture.Collector) (out []Disagreement) {
	defer errs.Recover(c.name + " check")
	return c.run(in)
}

func readings(s Signals, worker *workerscope.Result) []signals.Reading {
	rs := []signals.Reading{
		signals.ReadUserAgent(s.UserAgent),
		signals.ReadPlatform(s.Platform),
		signals.ReadTouchPoints(s.MaxTouchPoints),
		signals.ReadDeviceMemory(s.DeviceMemory),
		signals.ReadHardwareConcurrency(s.HardwareConcurrency),
	}
	if s.Voices != nil {
		rs = append(rs, signals.ReadVoices(s.Voices))
	}
	if worker != nil && worker.UserAgent != "" {
		rs = append(rs, signals.ReadWorkerUserAgent(worker.UserAgent))
	}
	return rs
}

func checkPlatform(in input) []Disagreement {
	if in.Platform == "" || in.UserAgent == "" {
		return nil
	}
	if !signals.PlatformLie(in.UserAgent, in.Platform) {
		return nil
	}
	return []Disagreement{{
		SignalA: signals.SourceUserAgent,
		SignalB: signals.SourcePlatform,
		Reason:  fmt.Sprintf("%s core does not support %s", in.core, in.Platform),
		Kind:    KindContradiction,
	}}
}

func checkTouch(in input) []Disagreement {
	if !signals.MacTouchLie(in.UserAgent, in.Platform, in.MaxTouchPoints) {
		return nil
	}
	claim := signals.SourceUserAgent
	if signals.PlatformSystem(in.Platform) == signals.CoreMac {
		claim = signals.SourcePlatform
	}
	return []Disagreement{{
		SignalA: claim,
		SignalB: signals.SourceTouchPoints,
		Reason:  "Macs do not support touch",
		Kind:    KindContradiction,
	}}
}

func checkDeviceMemory(in input) []Disagreement {
	if !signals.TooHighForMobile(in.DeviceMemory, in.system, in.limit) {
		return nil
	}
	return []Disagreement{{
		SignalA: signals.SourceUserAgent,
		SignalB: signals.SourceDeviceMemory,
		Reason:  "deviceMemory too high for " + in.system,
		Kind:    KindPlausibility,
	}}
}

func checkHardwareConcurrency(in input) []Disagreement {
	if !signals.TooHighForMobile(in.HardwareConcurrency, in.system, in.limit) {
		return nil
	}
	return []Disagreement{{
		SignalA: signals.SourceUserAgent,
		SignalB: signals.SourceHardwareConcurrency,
		Reason:  "hardwareConcurrency too high for " + in.system,
		Kind:    KindPlausibility,
	}}
}

func checkVoices(in input) []Disagreement {
	voice := signals.VoiceSystem(in.Voices)
	if voice == "" || in.system == "" || voice == in.system {
		return nil
	}
	return []Disagreement{{
		SignalA: signals.SourceUserAgent,
		SignalB: signals.SourceVoices,
		Reason:  fmt.Sprintf("%s speechSynthesis does not match %s system", voice, in.system),
		Kind:    KindContradiction,
	}}
}

func checkWorker(in input) []Disagreement {
	if in.worker == nil || in.worker.UserAgent == "" || in.UserAgent == "" {
		return nil
	}
	var out []Disagreement
	if in.worker.System != in.system {
		out = append(out, Disagreement{
			SignalA: signals.SourceUserAgent,
			SignalB: signals.SourceWorkerUserAgent,
			Reason:  fmt.Sprintf("%s worker does not match %s system", in.worker.System, in.system),
			Kind:    KindContradiction,
		})
	}
	if in.worker.UserAgent != in.UserAgent {
		out = append(out, Disagreement{
			SignalA: signals.SourceUserAgent,
			SignalB: signals.SourceWorkerUserAgent,
			Reason:  fmt.Sprintf("%s worker userAgent does not match", in.worker.Type),
			Kind:    KindContradiction,
		})
	}
	return out
}
