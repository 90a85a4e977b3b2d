package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteBackend хранит снимки в локальной базе sqlite.
// Схема таблицы snapshots управляется миграциями (см. migrations/).
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	query := `SELECT payload FROM snapshots WHERE resource_key = ?;`
	err := b.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot from sqlite: %w", err)
	}
	return payload, nil
}

func (b *SQLiteBackend) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO snapshots (resource_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(resource_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at;
	`
	if _, err := b.db.ExecContext(ctx, query, key, value, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write snapshot to sqlite: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE resource_key = ?;`
	if _, err := b.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot from sqlite: %w", err)
	}
	return nil
}
