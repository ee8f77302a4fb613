package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DB: DatabaseConfig{
			Dialect: DialectSQLite,
			Storage: "app.db",
		},
		App: AppConfig{
			HTTPPort:               "8080",
			ShutdownTimeoutSeconds: 10,
		},
	}
}

func TestValidate_SQLite(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg.DB.Storage = ""
	require.Error(t, cfg.Validate())
}

func TestValidate_Postgres(t *testing.T) {
	cfg := validConfig()
	cfg.DB.Dialect = DialectPostgres
	cfg.DB.Host = "localhost"
	cfg.DB.Name = "user_seed_service"
	require.NoError(t, cfg.Validate())

	cfg.DB.Host = ""
	require.Error(t, cfg.Validate())
}

func TestValidate_UnknownDialect(t *testing.T) {
	cfg := validConfig()
	cfg.DB.Dialect = "oracle"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database dialect")
}

func TestValidate_App(t *testing.T) {
	cfg := validConfig()
	cfg.App.HTTPPort = ""
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.App.ShutdownTimeoutSeconds = 0
	require.Error(t, cfg.Validate())
}

func TestValidate_Redis(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	require.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Name:     "user_seed_service",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=user_seed_service port=5432 sslmode=disable",
		cfg.DSN(),
	)
}
