// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// Config holds every setting the service reads at startup
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Port     string `env:"PORT" envDefault:"3000"`
	GRPCPort string `env:"GRPC_PORT" envDefault:"50051"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"memory"`
	SQLiteFile  string `env:"SQLITE_FILE" envDefault:"dev.sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`

	NATSURL     string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSSubject string `env:"NATS_SUBJECT" envDefault:"teams.events"`

	ClickHouseAddr     string `env:"CLICKHOUSE_ADDR" envDefault:"localhost:9000"`
	ClickHouseDB       string `env:"CLICKHOUSE_DB" envDefault:"default"`
	ClickHouseUser     string `env:"CLICKHOUSE_USER" envDefault:"default"`
	ClickHousePassword string `env:"CLICKHOUSE_PASSWORD"`

	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	DefaultTeamCount  int           `env:"DEFAULT_TEAM_COUNT" envDefault:"3"`
	DefaultRosterSize int           `env:"DEFAULT_ROSTER_SIZE" envDefault:"10"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c Config) Validate() error {
	switch c.DBDriver {
	case "memory", "sqlite", "mockpostgres":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER: %s (valid: memory, sqlite, postgres, mockpostgres)", c.DBDriver)
	}
	if c.DefaultTeamCount < 1 || c.DefaultTeamCount > models.MaxTeamCount {
		return fmt.Errorf("DEFAULT_TEAM_COUNT must be between 1 and %d, got %d", models.MaxTeamCount, c.DefaultTeamCount)
	}
	if c.DefaultRosterSize < 0 || c.DefaultRosterSize > models.MaxRosterSize {
		return fmt.Errorf("DEFAULT_ROSTER_SIZE must be between 0 and %d, got %d", models.MaxRosterSize, c.DefaultRosterSize)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative, got %s", c.SessionTTL)
	}
	return nil
}

// Development reports whether local stand-ins (embedded NATS, mock analytics)
// should be used
func (c Config) Development() bool {
	return c.Environment == "" || c.Environment == "development"
}
