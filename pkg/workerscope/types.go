package workerscope

import "time"

// ContextType is a worker execution context, in order of preference.
type ContextType string

const (
	Service   ContextType = "service"
	Shared    ContextType = "shared"
	Dedicated ContextType = "dedicated"
)

// Order is the fixed attempt order.
var Order = []ContextType{Service, Shared, Dedicated}

// Constructor is the built-in constructor name the context must present.
func (t ContextType) Constructor() string {
	switch t {
	case Service:
		return "ServiceWorkerContainer"
	case Shared:
		return "SharedWorker"
	case Dedicated:
		return "Worker"
	default:
		return ""
	}
}

func (t ContextType) String() string { return string(t) }

// Request is the single message sent into a worker context.
type Request struct {
	Type string `json:"type"`
}

// FingerprintRequest asks the bootstrap script for its fingerprint.
var FingerprintRequest = Request{Type: "fingerprint"}

// Reply is the bootstrap script's answer. Only UserAgent is required; a
// reply without it is treated as no reply.
type Reply struct {
	UserAgent           string   `json:"userAgent" yaml:"userAgent"`
	Platform            string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Language            string   `json:"language,omitempty" yaml:"language,omitempty"`
	HardwareConcurrency *float64 `json:"hardwareConcurrency,omitempty" yaml:"hardwareConcurrency,omitempty"`
	DeviceMemory        *float64 `json:"deviceMemory,omitempty" yaml:"deviceMemory,omitempty"`
	Canvas2D            string   `json:"canvas2d,omitempty" yaml:"canvas2d,omitempty"`
}

// Capability is what an environment reports about one context type before
// anything is launched in it.
type Capability struct {
	Supported   bool
	Constructor string
}

// Outcome of a single attempt.
type Outcome string

const (
	OutcomeResolved Outcome = "resolved"
	OutcomeTampered Outcome = "tampered"
	OutcomeTimeout  Outcome = "timeout"
	OutcomeEmpty    Outcome = "empty"
	OutcomeFailed   Outcome = "failed"
)

// Attempt records one context the orchestrator tried. Unsupported contexts
// are skipped without an attempt.
type Attempt struct {
	Type    ContextType   `json:"type"`
	Outcome Outcome       `json:"outcome"`
	Elapsed time.Duration `json:"elapsed"`
}

// Probe is the user agent reading obtained from a worker context.
type Probe struct {
	Type      ContextType   `json:"type"`
	UserAgent string        `json:"userAgent"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Canvas2D carries the worker's offscreen canvas rendering.
type Canvas2D struct {
	DataURI string `json:"dataURI,omitempty"`
}

// Result is the orchestrator's answer for one pass.
type Result struct {
	Probe
	Platform string    `json:"platform,omitempty"`
	System   string    `json:"system"`
	Device   string    `json:"device,omitempty"`
	Canvas2D Canvas2D  `json:"canvas2d"`
	Reply    Reply     `json:"reply"`
	Attempts []Attempt `json:"attempts"`
}
