package lies

import (
	"time"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
	"github.com/dmitrymomot/liekit/pkg/signals"
	"github.com/dmitrymomot/liekit/pkg/uaplatform"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

// Signals are the main-thread environment values read for one pass.
// Nil pointers and a nil voice roster mean the signal is unavailable.
type Signals struct {
	UserAgent           string          `json:"userAgent" yaml:"userAgent"`
	Platform            string          `json:"platform" yaml:"platform"`
	MaxTouchPoints      int             `json:"maxTouchPoints" yaml:"maxTouchPoints"`
	DeviceMemory        *float64        `json:"deviceMemory,omitempty" yaml:"deviceMemory,omitempty"`
	HardwareConcurrency *float64        `json:"hardwareConcurrency,omitempty" yaml:"hardwareConcurrency,omitempty"`
	Voices              []signals.Voice `json:"voices,omitempty" yaml:"voices,omitempty"`
}

// Kind separates signals that contradict each other from values that are
// implausible on their own for the claimed system.
type Kind string

const (
	KindContradiction Kind = "contradiction"
	KindPlausibility  Kind = "plausibility"
)

// Disagreement is one detected lie.
type Disagreement struct {
	SignalA signals.Source `json:"signalA"`
	SignalB signals.Source `json:"signalB"`
	Reason  string         `json:"reason"`
	Kind    Kind           `json:"kind"`
}

// Verdict is the outcome of one pass.
type Verdict struct {
	ID            string               `json:"id"`
	Identity      *uaplatform.Identity `json:"identity,omitempty"`
	System        string               `json:"system"`
	Core          string               `json:"core"`
	Readings      []signals.Reading    `json:"readings"`
	Disagreements []Disagreement       `json:"disagreements"`
	Passed        bool                 `json:"passed"`
	Errors        errcapture.Report    `json:"errors"`
	Worker        *workerscope.Result  `json:"worker,omitempty"`
	Hash          string               `json:"hash"`
	Elapsed       time.Duration        `json:"elapsed"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// Lied reports whether any disagreement of the given kind was recorded.
func (v Verdict) Lied(kind Kind) bool {
	for _, d := range v.Disagreements {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Between returns the disagreements recorded for source, on either side.
func (v Verdict) Between(source signals.Source) []Disagreement {
	var out []Disagreement
	for _, d := range v.Disagreements {
		if d.SignalA == source || d.SignalB == source {
			out = append(out, d)
		}
	}
	return out
}

// fingerprint is the hashed part of a verdict. Ids and timings are left out
// so the same environment always hashes the same.
type fingerprint struct {
	Identity      *uaplatform.Identity `json:"identity"`
	System        string               `json:"system"`
	Core          string               `json:"core"`
	Readings      []signals.Reading    `json:"readings"`
	Disagreements []Disagreement       `json:"disagreements"`
	Worker        *workerFingerprint   `json:"worker"`
}

type workerFingerprint struct {
	Type      workerscope.ContextType `json:"type"`
	UserAgent string                  `json:"userAgent"`
	System    string                  `json:"system"`
	Device    string                  `json:"device"`
}

func (v Verdict) fingerprint() fingerprint {
	fp := fingerprint{
		Identity:      v.Identity,
		System:        v.System,
		Core:          v.Core,
		Readings:      v.Readings,
		Disagreements: v.Disagreements,
	}
	if v.Worker != nil {
		fp.Worker = &workerFingerprint{
			Type:      v.Worker.Type,
			UserAgent: v.Worker.UserAgent,
			System:    v.Worker.System,
			Device:    v.Worker.Device,
		}
	}
	return fp
}
