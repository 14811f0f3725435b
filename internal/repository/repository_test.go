package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/storage"
)

func TestOpenLocalBackends(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: config.StorageMemory}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, mem)
	require.NoError(t, mem.Close())

	dir := t.TempDir()
	file, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: config.StorageFile, FileDir: dir}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.FileStore{}, file)

	require.NoError(t, file.Set(ctx, "session:abc:nexus-cart", []byte("[]")))
	got, ok, err := file.Get(ctx, "session:abc:nexus-cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(got))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: "tape"}}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown storage backend")
}
