package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db.local")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 20*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 10, cfg.Postgres.MaxConns)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.CORS.AllowedMethods, "DELETE")
}

func TestLoadOverrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("PG_PORT", "6543")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 6543, cfg.Postgres.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	pg := Postgres{Host: "h", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "disable", MaxConns: 4}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", pg.DSN())
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable pool_max_conns=4", pg.PoolDSN())
}
