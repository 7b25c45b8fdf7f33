package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")

	cfg := Load()

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 8081, cfg.GRPCPort)
	assert.Equal(t, StoreMemory, cfg.CatalogStore)
	assert.Equal(t, StoreMemory, cfg.CartStore)
	assert.Equal(t, StoreMemory, cfg.OrderStore)
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, 1.0, cfg.MockLatencyScale)
	assert.Equal(t, 2*time.Hour, cfg.CartSessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("GRPC_PORT", "9091")
	t.Setenv("ORDER_STORE", "Postgres")
	t.Setenv("CART_STORE", " postgres ")
	t.Setenv("MOCK_LATENCY_SCALE", "0")
	t.Setenv("CART_SESSION_TTL", "15m")

	cfg := Load()

	assert.Equal(t, 9091, cfg.GRPCPort)
	assert.Equal(t, StorePostgres, cfg.OrderStore)
	assert.Equal(t, StorePostgres, cfg.CartStore)
	assert.Equal(t, StoreMemory, cfg.CatalogStore)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, 0.0, cfg.MockLatencyScale)
	assert.Equal(t, 15*time.Minute, cfg.CartSessionTTL)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("MOCK_FAILURE_RATE", "-1")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 0.0, cfg.MockFailureRate)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
