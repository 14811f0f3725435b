// Package storage defines the key-value persistence used for per-session state
// (cart, current user, language preference) and its local backends.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Store is a synchronous key-value store
type Store interface {
	// Get returns the stored value. The boolean is false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Backend is a Store that owns resources
type Backend interface {
	Store
	Close() error
}

type scoped struct {
	store  Store
	prefix string
}

// Scoped returns a view of store whose keys are prefixed with prefix
func Scoped(store Store, prefix string) Store {
	return &scoped{store: store, prefix: prefix}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.prefix+key)
}

// SessionPrefix is the key prefix of a session's records
func SessionPrefix(sessionID string) string {
	return fmt.Sprintf("session:%s:", sessionID)
}

// LoadJSON decodes the value under key into dest. It reports false when the key is
// absent, unreadable or malformed; dest is left untouched in that case.
func LoadJSON(ctx context.Context, store Store, key string, dest interface{}, logger *zap.Logger) bool {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to read persisted record", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("Discarding malformed persisted record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SaveJSON encodes value and writes it under key
func SaveJSON(ctx context.Context, store Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
