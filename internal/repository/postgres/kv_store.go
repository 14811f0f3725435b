package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS storefront_kv (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// KVStore persists session records in the storefront_kv table
type KVStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewKVStore creates a new Postgres-backed key-value store
func NewKVStore(db *sql.DB, logger *zap.Logger) *KVStore {
	return &KVStore{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the backing table if it does not exist
func (r *KVStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		r.logger.Error("Failed to create storefront_kv table", zap.Error(err))
		return err
	}
	return nil
}

func (r *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM storefront_kv
		WHERE key = $1
	`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get record", zap.String("key", key), zap.Error(err))
		return nil, false, err
	}

	return value, true, nil
}

func (r *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO storefront_kv (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now())
	if err != nil {
		r.logger.Error("Failed to set record", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (r *KVStore) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM storefront_kv
		WHERE key = $1
	`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.logger.Error("Failed to delete record", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (r *KVStore) Close() error {
	return r.db.Close()
}
