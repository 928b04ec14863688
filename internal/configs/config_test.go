package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_NAME", "PORT", "STORE_DRIVER", "DATABASE_URL", "DB_MAX_CONNS", "JWT_SECRET_KEY",
	"SESSION_TTL", "AUTH_LATENCY", "BOOKING_LATENCY", "GATEWAY_TIMEOUT", "AUTH_STRICT",
	"WISHLIST_DEDUP", "CORS_ALLOWED_ORIGINS", "RABBITMQ_ENABLED", "RABBITMQ_URL",
	"RABBITMQ_EXCHANGE", "FLUENTBIT_ENABLED", "STDOUT_LOG_LEVEL", "STDOUT_LOG_JSON",
}

// clearEnv убирает переменные на время теста. t.Setenv восстановит их после.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, time.Second, cfg.Gateway.AuthLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.Gateway.BookingLatency)
	assert.False(t, cfg.Gateway.AuthStrict)
	assert.False(t, cfg.Session.WishlistDedup)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Rest.AllowedOrigins)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET_KEY=from-file\nPORT=9090\nAUTH_LATENCY=250\nBOOKING_LATENCY=2s\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\nWISHLIST_DEDUP=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv не перезаписывает уже заданные переменные
	clearEnv(t)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Session.JWTSecretKey)
	assert.Equal(t, "9090", cfg.Rest.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Gateway.AuthLatency)
	assert.Equal(t, 2*time.Second, cfg.Gateway.BookingLatency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.AllowedOrigins)
	assert.True(t, cfg.Session.WishlistDedup)
}

func TestLoadConfig_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	clearEnv(t)

	t.Setenv("JWT_SECRET_KEY", "")
	_, err := LoadConfig(missing)
	assert.Error(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err = LoadConfig(missing)
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "mongo")
	_, err = LoadConfig(missing)
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("RABBITMQ_URL", "")
	_, err = LoadConfig(missing)
	assert.Error(t, err)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "bogus")
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "0")
	assert.Equal(t, time.Duration(0), getEnvAsDuration("TEST_DURATION", time.Minute))
}
