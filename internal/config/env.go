package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds optional overrides read from the environment
type Env struct {
	URL       string        `env:"ICONSCRAPE_URL"`
	UserAgent string        `env:"ICONSCRAPE_USER_AGENT"`
	Timeout   time.Duration `env:"ICONSCRAPE_TIMEOUT" envDefault:"30s"`
	OutputDir string        `env:"ICONSCRAPE_OUTPUT_DIR"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
