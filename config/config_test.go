package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("REDIS_HOST", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HttpAddr)
	assert.Equal(t, "api", cfg.CatalogSource)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_USER", "larek")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_PORT", "5433")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg := Load()

	assert.Equal(t, "postgres://larek:secret@db:5433/shop?sslmode=disable", cfg.DSN())
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}

func TestDSN_Sqlite(t *testing.T) {
	cfg := Config{DbDriver: "sqlite3", SqlitePath: "/tmp/larek.db"}
	assert.Equal(t, "/tmp/larek.db", cfg.DSN())
}
