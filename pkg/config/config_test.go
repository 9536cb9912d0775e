package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "kassa-api", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "kassa_api", cfg.DB.DBName)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "kassa-api", cfg.JWT.Issuer)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvUeberschreibt(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.intern")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_SECRET", "geheim")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.intern", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "geheim", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestDSN_SonderzeichenWerdenEncodiert(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "kassa",
		Password: "p@ss:wort/1",
		DBName:   "kassa_api",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Equal(t, "postgres://kassa:p%40ss:wort%2F1@localhost:5432/kassa_api?sslmode=disable", dsn)
}

func TestConnectionString_DatabaseURLHatVorrang(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require",
		Host:        "ignoriert",
	}
	assert.Equal(t, "postgresql://u:p@host:5432/db?sslmode=require", db.ConnectionString())
}
