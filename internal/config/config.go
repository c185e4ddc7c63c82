package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "landing"

// Config holds the runtime settings, read from LANDING_* variables.
type Config struct {
	Addr         string `envconfig:"ADDR" default:":8080"`
	Dev          bool   `envconfig:"DEV" default:"false"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text"`
	OutDir       string `envconfig:"OUT_DIR" default:"dist"`
	OTelEndpoint string `envconfig:"OTEL_ENDPOINT"`
}

// Load reads .env (if present) and then the environment. Variables already
// set in the environment win over .env values. The result is not validated
// so callers can apply flag overrides first.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be \"text\" or \"json\", got %q", ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("%w: out dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
