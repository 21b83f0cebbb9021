// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds cyberfolio settings.
type Config struct {
	LogFile     string `env:"CYBERFOLIO_LOG_FILE"`
	Audio       bool   `env:"CYBERFOLIO_AUDIO" envDefault:"true"`
	MatrixSeed  int64  `env:"CYBERFOLIO_MATRIX_SEED"`
	FrameMillis int    `env:"CYBERFOLIO_FRAME_MS" envDefault:"50"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"cyberfolio"`
}

// FrameInterval returns the animation tick period.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMillis) * time.Millisecond
}

// Load reads dotenv files (missing files are ignored) and then parses the
// environment. Variables already set in the environment win over dotenv.
func Load(dotenv ...string) (Config, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.FrameMillis <= 0 {
		return Config{}, fmt.Errorf("CYBERFOLIO_FRAME_MS must be positive, got %d", cfg.FrameMillis)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
