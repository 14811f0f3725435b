package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/config"
)

// KVStore persists session records as Redis strings
type KVStore struct {
	client *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient creates a Redis client and verifies the connection
func NewClient(cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewKVStore wraps a client. A zero ttl keeps records forever.
func NewKVStore(client *goredis.Client, ttl time.Duration, logger *zap.Logger) *KVStore {
	return &KVStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Redis Get failed", zap.String("key", key), zap.Error(err))
		return nil, false, err
	}
	return val, true, nil
}

func (r *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.logger.Error("Redis Set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *KVStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis Delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *KVStore) Close() error {
	return r.client.Close()
}
