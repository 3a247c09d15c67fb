package db

import (
	"context"
	"database/sql"
)

// KvStore is a row of the kv_store table.
type KvStore struct {
	Key       string
	Value     string
	UpdatedAt int64
}

// KVSetParams are the arguments to KVSet.
type KVSetParams struct {
	Key       string
	Value     string
	UpdatedAt int64
}

// Queries holds the statements run against kv_store.
type Queries struct {
	db *sql.DB
}

const kvGet = `SELECT key, value, updated_at FROM kv_store WHERE key = ?`

// KVGet returns the row for key or sql.ErrNoRows.
func (q *Queries) KVGet(ctx context.Context, key string) (KvStore, error) {
	var row KvStore
	err := q.db.QueryRowContext(ctx, kvGet, key).Scan(&row.Key, &row.Value, &row.UpdatedAt)
	return row, err
}

const kvSet = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// KVSet upserts a row.
func (q *Queries) KVSet(ctx context.Context, arg KVSetParams) error {
	_, err := q.db.ExecContext(ctx, kvSet, arg.Key, arg.Value, arg.UpdatedAt)
	return err
}

const kvDelete = `DELETE FROM kv_store WHERE key = ?`

// KVDelete removes the row for key, if any.
func (q *Queries) KVDelete(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, kvDelete, key)
	return err
}
