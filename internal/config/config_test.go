package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "loft_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "report-photos", cfg.StorageBucket)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, 50*time.Second, cfg.WSPingInterval)
	assert.Equal(t, 60*time.Second, cfg.WSPongTimeout)
	assert.False(t, cfg.StorageUseSSL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("STORAGE_ENDPOINT", "minio.internal:9000")
	t.Setenv("STORAGE_BUCKET", "photos")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "minio.internal:9000", cfg.StorageEndpoint)
	assert.Equal(t, "photos", cfg.StorageBucket)
	assert.True(t, cfg.StorageUseSSL)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "loft_db",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=loft_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestParseDurationFallback(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")
	cfg := Load()
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
}
