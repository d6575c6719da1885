package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	InputDir    string `env:"AOC_INPUT_DIR" envDefault:"inputs"`
	AnswersFile string `env:"AOC_ANSWERS_FILE" envDefault:"answers.yaml"`
	Verbose     bool   `env:"AOC_VERBOSE"`
	// SkipInvalid drops unparsable card lines instead of failing.
	SkipInvalid bool `env:"AOC_SKIP_INVALID"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
