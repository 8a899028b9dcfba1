package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 6*time.Hour, cfg.AI.DrillCacheTTL)
	assert.Equal(t, 1440, cfg.JWT.ExpiryMinutes)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("APP_TIMEZONE", "America/New_York")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "mongo")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STORAGE_BACKEND")
	})
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "APP_TIMEZONE")
	})
}

func TestDSN(t *testing.T) {
	db := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "acecourt", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=acecourt port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}

func TestOpenDatabaseSQLite(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: "sqlite", SQLitePath: t.TempDir() + "/test.db"}}
	db, err := OpenDatabase(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())

	_, err = OpenDatabase(&Config{Storage: StorageConfig{Backend: "memory"}})
	assert.Error(t, err)
}
