package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend хранит снимки в PostgreSQL для развертываний,
// где кэш разделяется несколькими экземплярами шлюза
type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	query := `SELECT payload FROM snapshots WHERE resource_key = $1;`
	err := b.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot from postgres: %w", err)
	}
	return payload, nil
}

func (b *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO snapshots (resource_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (resource_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW();
	`
	if _, err := b.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write snapshot to postgres: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE resource_key = $1;`
	if _, err := b.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot from postgres: %w", err)
	}
	return nil
}
