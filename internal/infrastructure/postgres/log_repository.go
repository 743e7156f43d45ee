package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

const logColunas = `id, tipo, item_nome, delta, detalhe, usuario, data`

// LogRepo implementação de LogRepository sobre PostgreSQL (usável com pool ou tx).
// A tabela é append-only: este adaptador não expõe UPDATE nem DELETE.
type LogRepo struct {
	q Querier
}

// NewLogRepository constrói o adaptador do histórico. Passar pool ou tx (Querier).
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Append grava um registro no histórico.
func (r *LogRepo) Append(log *entity.LogMovimentacao) error {
	query := `
		INSERT INTO logs (id, tipo, item_nome, delta, detalhe, usuario, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Tipo, log.ItemNome, log.Delta, log.Detalhe, log.Usuario, log.Data,
	)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// List devolve o histórico paginado, mais recente primeiro.
func (r *LogRepo) List(limit, offset int) ([]*entity.LogMovimentacao, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+logColunas+` FROM logs ORDER BY data DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// ListAll devolve o histórico inteiro, mais recente primeiro.
func (r *LogRepo) ListAll() ([]*entity.LogMovimentacao, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+logColunas+` FROM logs ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all logs: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]*entity.LogMovimentacao, error) {
	var list []*entity.LogMovimentacao
	for rows.Next() {
		var l entity.LogMovimentacao
		if err := rows.Scan(&l.ID, &l.Tipo, &l.ItemNome, &l.Delta, &l.Detalhe, &l.Usuario, &l.Data); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Count conta os registros do histórico.
func (r *LogRepo) Count() (int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM logs`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count logs: %w", err)
	}
	return total, nil
}
