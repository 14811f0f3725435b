package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "sk", cfg.Language)
	assert.Equal(t, 2*time.Second, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, "150", cfg.Checkout.FreeShippingThreshold.String())
	assert.Equal(t, "9.99", cfg.Checkout.FlatShippingFee.String())
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_SESSION_TTL", "24h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "150ms")
	t.Setenv("DEFAULT_LANGUAGE", "en")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 150*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "STORAGE_BACKEND", "mongo"},
		{"bad delay", "CHECKOUT_PROCESSING_DELAY", "soon"},
		{"bad threshold", "FREE_SHIPPING_THRESHOLD", "lots"},
		{"bad language", "DEFAULT_LANGUAGE", "de"},
		{"bad redis db", "REDIS_DB", "one"},
		{"bad idle ttl", "SESSION_IDLE_TTL", "later"},
		{"negative sweep", "SESSION_SWEEP_INTERVAL", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateNegativeAmounts(t *testing.T) {
	t.Setenv("FLAT_SHIPPING_FEE", "-1")
	_, err := Load()
	assert.ErrorContains(t, err, "cannot be negative")
}

func TestIdleTTLMustNotOutliveRedisRecords(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_SESSION_TTL", "10m")
	t.Setenv("SESSION_IDLE_TTL", "1h")
	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_SESSION_TTL")

	t.Setenv("SESSION_IDLE_TTL", "5m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
}
