package workerscope

import "time"

// Config bounds each attempt. The service worker keeps its short window;
// shared and dedicated workers get their own.
type Config struct {
	ServiceTimeout time.Duration `env:"WORKER_SERVICE_TIMEOUT" envDefault:"1s"`
	WorkerTimeout  time.Duration `env:"WORKER_TIMEOUT" envDefault:"3s"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		ServiceTimeout: time.Second,
		WorkerTimeout:  3 * time.Second,
	}
}

func (c Config) timeout(t ContextType) time.Duration {
	if t == Service {
		return c.ServiceTimeout
	}
	return c.WorkerTimeout
}
