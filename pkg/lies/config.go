package lies

import (
	"time"

	"github.com/dmitrymomot/liekit/pkg/signals"
)

// Config tunes the engine and the pass runner.
type Config struct {
	MobileLimit  float64       `env:"LIES_MOBILE_LIMIT" envDefault:"8"`
	VoiceTimeout time.Duration `env:"LIES_VOICE_TIMEOUT" envDefault:"100ms"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		MobileLimit:  signals.DefaultMobileLimit,
		VoiceTimeout: 100 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MobileLimit <= 0 {
		c.MobileLimit = def.MobileLimit
	}
	if c.VoiceTimeout <= 0 {
		c.VoiceTimeout = def.VoiceTimeout
	}
	return c
}
