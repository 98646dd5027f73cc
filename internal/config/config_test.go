package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "PORT", "GRPC_PORT", "DB_DRIVER", "SQLITE_FILE",
		"DATABASE_URL", "NATS_URL", "NATS_SUBJECT", "SESSION_TTL",
		"DEFAULT_TEAM_COUNT", "DEFAULT_ROSTER_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.Development())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, "teams.events", cfg.NATSSubject)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.DefaultTeamCount)
	assert.Equal(t, 10, cfg.DefaultRosterSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_FILE", "/tmp/teams.sqlite")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("DEFAULT_TEAM_COUNT", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Development())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/teams.sqlite", cfg.SQLiteFile)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.DefaultTeamCount)
}

func TestValidate(t *testing.T) {
	base := Config{DBDriver: "memory", DefaultTeamCount: 3, DefaultRosterSize: 10}
	require.NoError(t, base.Validate())

	mock := base
	mock.DBDriver = "mockpostgres"
	require.NoError(t, mock.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"postgres without url", func(c *Config) { c.DBDriver = "postgres" }},
		{"zero teams", func(c *Config) { c.DefaultTeamCount = 0 }},
		{"too many teams", func(c *Config) { c.DefaultTeamCount = 101 }},
		{"negative roster", func(c *Config) { c.DefaultRosterSize = -1 }},
		{"huge roster", func(c *Config) { c.DefaultRosterSize = 5000 }},
		{"negative ttl", func(c *Config) { c.SessionTTL = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DEFAULT_TEAM_COUNT", "three")

	_, err := Load()
	assert.Error(t, err)
}
