package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "SESSIONKEEPER_CLIENT_"

func parseEnv(cfg *Config) {
	if err := loadEnv(cfg, nil); err != nil {
		panic(err)
	}
}

func loadEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
