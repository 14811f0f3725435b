package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(v))

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":2}`)))
	v, _, _ = s.Get(ctx, "k")
	assert.JSONEq(t, `{"a":2}`, string(v))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, fs)
}

func TestScopedStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	a := Scoped(base, SessionPrefix("a"))
	b := Scoped(base, SessionPrefix("b"))

	require.NoError(t, a.Set(ctx, "nexus-cart", []byte("[]")))

	_, ok, _ := b.Get(ctx, "nexus-cart")
	assert.False(t, ok)

	_, ok, _ = base.Get(ctx, "session:a:nexus-cart")
	assert.True(t, ok)
}

func TestLoadJSONFailsOpen(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	logger := zap.NewNop()

	var dest []string
	assert.False(t, LoadJSON(ctx, s, "absent", &dest, logger))

	require.NoError(t, s.Set(ctx, "bad", []byte("{not json")))
	assert.False(t, LoadJSON(ctx, s, "bad", &dest, logger))
	assert.Nil(t, dest)

	require.NoError(t, SaveJSON(ctx, s, "good", []string{"x", "y"}))
	assert.True(t, LoadJSON(ctx, s, "good", &dest, logger))
	assert.Equal(t, []string{"x", "y"}, dest)
}
