package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/estoque"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// Ensure TxRunner implements estoque.TxRunner.
var _ estoque.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Qualquer erro de fn desfaz tudo: é aqui que a
// atomicidade do ledger é garantida.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	entradaRepo repository.EntradaRepository,
	saidaRepo repository.SaidaRepository,
	logRepo repository.LogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	entradaRepo := NewEntradaRepository(tx)
	saidaRepo := NewSaidaRepository(tx)
	logRepo := NewLogRepository(tx)

	if err := fn(itemRepo, entradaRepo, saidaRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
