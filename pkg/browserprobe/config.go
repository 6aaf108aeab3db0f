package browserprobe

import "time"

// Config controls how Chrome is started and driven.
type Config struct {
	RemoteURL         string        `env:"BROWSER_REMOTE_URL"`                           // RemoteURL is the DevTools WebSocket of an already running Chrome. Empty launches a local one.
	Bin               string        `env:"BROWSER_BIN"`                                  // Bin overrides the Chrome binary the launcher would pick.
	Headless          bool          `env:"BROWSER_HEADLESS" envDefault:"true"`           // Headless runs Chrome without a window.
	Stealth           bool          `env:"BROWSER_STEALTH" envDefault:"true"`            // Stealth opens pages with the automation markers patched out.
	NavigationTimeout time.Duration `env:"BROWSER_NAV_TIMEOUT" envDefault:"30s"`         // NavigationTimeout bounds navigation and page load.
	AssetsAddr        string        `env:"BROWSER_ASSETS_ADDR" envDefault:"127.0.0.1:0"` // AssetsAddr is where the probe page and worker script are served.
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		Headless:          true,
		Stealth:           true,
		NavigationTimeout: 30 * time.Second,
		AssetsAddr:        "127.0.0.1:0",
	}
}
