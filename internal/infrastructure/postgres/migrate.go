package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate instala o schema de forma idempotente na subida do processo.
// itens.quantidade não carrega CHECK (>= 0): o piso é política do
// coordenador de movimentações e pode ser desligado por configuração.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id         UUID PRIMARY KEY,
			username   TEXT NOT NULL UNIQUE,
			senha_hash TEXT NOT NULL,
			is_admin   BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS itens (
			id         UUID PRIMARY KEY,
			codigo     TEXT NOT NULL UNIQUE,
			nome       TEXT NOT NULL,
			quantidade INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS entradas (
			id             UUID PRIMARY KEY,
			item_id        UUID NOT NULL,
			nfe            TEXT NOT NULL,
			quantidade     INTEGER NOT NULL,
			valor_unitario NUMERIC(14,4) NOT NULL DEFAULT 0,
			data_entrega   TIMESTAMPTZ NOT NULL,
			observacao     TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_by     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS saidas (
			id         UUID PRIMARY KEY,
			item_id    UUID NOT NULL,
			ticket     TEXT NOT NULL DEFAULT '',
			patrimonio TEXT NOT NULL,
			secretaria TEXT NOT NULL,
			quantidade INTEGER NOT NULL,
			data_saida TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_by TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id         UUID PRIMARY KEY,
			tipo       TEXT NOT NULL,
			item_nome  TEXT NOT NULL,
			delta      INTEGER NOT NULL,
			detalhe    TEXT NOT NULL DEFAULT '',
			usuario    TEXT NOT NULL DEFAULT '',
			data       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entradas_item ON entradas (item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_saidas_item ON saidas (item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_data ON logs (data DESC)`,
	}

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
