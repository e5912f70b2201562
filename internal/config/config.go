package config

import (
	"log/slog"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	// DataFile is the flat-file ledger location. Ignored when DatabaseURL is set.
	DataFile string `env:"ROOMDESK_DATA_FILE,default=bookings.csv"`

	// CatalogFile optionally replaces the built-in room inventory,
	// read once at startup.
	CatalogFile string `env:"ROOMDESK_CATALOG_FILE"`

	// DatabaseURL switches the ledger backend to postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	Currency string `env:"ROOMDESK_CURRENCY,default=₹"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

func FromEnv() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
