package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSnapshots 可选快照后端：单表，集合名 → jsonb 文档
type PostgresSnapshots struct {
	db *sql.DB
}

func NewPostgresSnapshots(db *sql.DB) *PostgresSnapshots {
	return &PostgresSnapshots{db: db}
}

// EnsureSchema 建表（幂等）
func (p *PostgresSnapshots) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			collection VARCHAR(50) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure snapshots table: %w", err)
	}
	return nil
}

func (p *PostgresSnapshots) Load(ctx context.Context, collection string) ([]byte, error) {
	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE collection = $1`, collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", collection, err)
	}
	return data, nil
}

func (p *PostgresSnapshots) Save(ctx context.Context, collection string, data []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO snapshots (collection, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (collection)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		collection, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", collection, err)
	}
	return nil
}
