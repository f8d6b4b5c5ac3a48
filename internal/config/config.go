// Package config holds the runtime settings of the folio binary. Page content
// (titles, labels, projects) lives in the YAML document loaded by the
// portfolio package; this package only covers how the process runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultRelayURL is the formsubmit.co AJAX endpoint base. The contact email
// is appended as the final path segment.
const DefaultRelayURL = "https://formsubmit.co/ajax"

// Config is populated from FOLIO_* environment variables and then overridden
// by command-line flags.
type Config struct {
	ConfigPath string `env:"FOLIO_CONFIG"     envDefault:"config.yml"`
	RelayURL   string `env:"FOLIO_RELAY_URL"  envDefault:"https://formsubmit.co/ajax"`
	LogFile    string `env:"FOLIO_LOG_FILE"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL"  envDefault:"info"`
	Watch      bool   `env:"FOLIO_WATCH"`
	AltScreen  bool   `env:"FOLIO_ALT_SCREEN" envDefault:"true"`
	Mouse      bool   `env:"FOLIO_MOUSE"      envDefault:"true"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.ConfigPath == "" {
		return fmt.Errorf("config path is empty")
	}
	if c.RelayURL == "" {
		return fmt.Errorf("relay url is empty")
	}
	return nil
}
