package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT"            envDefault:"8080"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	SessionTTL     time.Duration `env:"SESSION_TTL"     envDefault:"24h"`
	RateLimit      int           `env:"RATE_LIMIT"      envDefault:"500"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	PurgeInterval  time.Duration `env:"PURGE_INTERVAL"  envDefault:"10m"`
	HTMXScriptURL  string        `env:"HTMX_SCRIPT_URL" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.PurgeInterval <= 0 {
		return errors.New("PURGE_INTERVAL must be positive")
	}
	return nil
}

func (c Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}
