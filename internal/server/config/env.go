package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name in Config's env tags.
const EnvPrefix = "SESSIONKEEPER_"

// parseEnv overlays SESSIONKEEPER_* variables onto config. Unset variables
// keep the current value. Malformed values panic, like malformed JSON.
func parseEnv(config *Config) {
	if err := loadEnv(config, nil); err != nil {
		panic(err)
	}
}

// loadEnv parses into config from environ, or from the process
// environment when environ is nil.
func loadEnv(config *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
