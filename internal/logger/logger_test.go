package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusshop/storefront/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "storefront.log")
	cfg := &config.Config{
		Environment: "production",
		Log:         config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1},
	}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("cart updated")
	log.Debug("filtered out")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"cart updated"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.LogConfig{Level: "chatty"}})
	assert.Error(t, err)
}
