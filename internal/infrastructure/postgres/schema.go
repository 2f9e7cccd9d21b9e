package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea la tabla de clientes si no existe. Idempotente; pensado para
// entornos locales y de pruebas (DB_AUTO_MIGRATE). En producción la tabla se provisiona aparte.
func EnsureSchema(ctx context.Context, q Querier, table string) error {
	if table == "" {
		table = DefaultCustomerTable
	}
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			email            TEXT NOT NULL,
			phone            TEXT,
			available_credit NUMERIC(14, 2) NOT NULL DEFAULT 0 CHECK (available_credit >= 0),
			created_at       TIMESTAMPTZ NOT NULL,
			updated_at       TIMESTAMPTZ NOT NULL
		)`, quoteTable(table))
	if _, err := q.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure customer table: %w", err)
	}
	return nil
}
