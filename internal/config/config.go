package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"

	"resonate/internal/config/configs"
)

// Config aggregates every configuration section of the service. Fields are
// read from the environment; nested sections carry an envPrefix so their
// variables are grouped (HTTP_PORT, PSQL_ADDRESS, REDIS_ENABLED, ...). See
// the configs package for defaults.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the API server. Environment variables
	// prefixed with HTTP_ populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the publisher inventory database. Environment
	// variables prefixed with PSQL_ populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional inventory cache. Environment variables
	// prefixed with REDIS_ populate this struct.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Engine tunes scoring, the mix optimizer and where extra city files
	// are read from. Environment variables prefixed with ENGINE_ populate
	// this struct.
	Engine configs.Engine `envPrefix:"ENGINE_"`
}

// Load reads the optional dotenv files and then the environment into a
// Config. Variables already set in the environment win over dotenv values.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, eris.Wrap(err, "config: load dotenv")
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "config: parse environment")
	}
	if err := cfg.Engine.Validate(); err != nil {
		return cfg, eris.Wrap(err, "config: validate engine")
	}
	return cfg, nil
}
