// Package repository opens the storage backend selected by configuration.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/repository/postgres"
	"github.com/nexusshop/storefront/internal/repository/redis"
	"github.com/nexusshop/storefront/internal/storage"
)

// Open connects to the configured backend. Callers must Close the result.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Backend, error) {
	logger.Info("Opening storage backend", zap.String("backend", cfg.Storage.Backend))

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil

	case config.StorageFile:
		store, err := storage.NewFileStore(cfg.Storage.FileDir)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		store := postgres.NewKVStore(db, logger)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return store, nil

	case config.StorageRedis:
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return redis.NewKVStore(client, cfg.Redis.SessionTTL, logger), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
