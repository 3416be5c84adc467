package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema del almacén: items, movimientos (libro append-only) y usuarios.
// La FK de movements a items impide borrar un item con historial.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id              UUID PRIMARY KEY,
		name            TEXT NOT NULL,
		brand           TEXT NOT NULL DEFAULT '',
		quantity        BIGINT NOT NULL CHECK (quantity >= 0),
		initial_balance BIGINT NOT NULL CHECK (initial_balance >= 0),
		unit            TEXT NOT NULL DEFAULT '',
		price           NUMERIC(14,2) NOT NULL DEFAULT 0,
		category        TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		expires_at      DATE,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_name ON items (lower(name))`,
	`CREATE TABLE IF NOT EXISTS movements (
		id          BIGSERIAL PRIMARY KEY,
		item_id     UUID NOT NULL REFERENCES items (id),
		type        TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
		quantity    BIGINT NOT NULL CHECK (quantity > 0),
		date        TIMESTAMPTZ NOT NULL,
		responsible TEXT NOT NULL,
		reason      TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_item_date ON movements (item_id, date, id)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_date ON movements (date, id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate aplica el esquema al arrancar (idempotente).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar migración: %w", err)
		}
	}
	return nil
}
