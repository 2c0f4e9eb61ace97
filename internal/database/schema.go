package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// migrationLockID serialises schema reconciliation across replicas.
const migrationLockID int64 = 0x70726f64

// schemaStatements bring the products table to the declared shape. They are
// idempotent so they run on every boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL CHECK (name <> ''),
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL DEFAULT 'No description provided',
		category TEXT NOT NULL CHECK (category <> ''),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS description TEXT NOT NULL DEFAULT 'No description provided'`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
}

// Migrate reconciles the products schema inside a single transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "migrate").Logger()
	logger.Info().Int("statements", len(schemaStatements)).Msg("reconciling database schema")

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockID); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		for i, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d failed: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("schema reconciliation failed")
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info().Msg("database schema is up to date")
	return nil
}
