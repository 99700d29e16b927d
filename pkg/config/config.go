package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config contains server configuration parameters. Precedence, lowest to
// highest: built-in defaults, environment variables, YAML config file,
// command-line flags (handled in cmd/folio).
type Config struct {
	Listen     string        `env:"FOLIO_LISTEN" envDefault:":8080" yaml:"listen"`
	DataDir    string        `env:"FOLIO_DATA_DIR" envDefault:"./data" yaml:"data_dir"`
	LogLevel   string        `env:"FOLIO_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	LogJSON    bool          `env:"FOLIO_LOG_JSON" envDefault:"false" yaml:"log_json"`
	SessionTTL time.Duration `env:"FOLIO_SESSION_TTL" envDefault:"12h" yaml:"session_ttl"`
}

// Load builds the configuration from defaults, environment variables and
// an optional YAML file. path may be empty.
func Load(path string) (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &cfg, nil
}
