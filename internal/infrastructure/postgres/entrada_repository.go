package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

const entradaColunas = `id, item_id, nfe, quantidade, valor_unitario, data_entrega, observacao, created_at, created_by`

// EntradaRepo implementação de EntradaRepository sobre PostgreSQL (usável com pool ou tx).
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository constrói o adaptador de entradas. Passar pool ou tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

// Create persiste uma entrada.
func (r *EntradaRepo) Create(entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (id, item_id, nfe, quantidade, valor_unitario, data_entrega, observacao, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.ItemID, entrada.NFe, entrada.Quantidade, entrada.ValorUnitario,
		entrada.DataEntrega, entrada.Observacao, entrada.CreatedAt, entrada.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetByID obtém uma entrada por ID (nil se não existe).
func (r *EntradaRepo) GetByID(id string) (*entity.Entrada, error) {
	var e entity.Entrada
	err := r.q.QueryRow(context.Background(),
		`SELECT `+entradaColunas+` FROM entradas WHERE id = $1`, id).Scan(
		&e.ID, &e.ItemID, &e.NFe, &e.Quantidade, &e.ValorUnitario,
		&e.DataEntrega, &e.Observacao, &e.CreatedAt, &e.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return &e, nil
}

// Update atualiza os campos editáveis de uma entrada.
func (r *EntradaRepo) Update(entrada *entity.Entrada) error {
	query := `
		UPDATE entradas
		SET nfe = $2, quantidade = $3, valor_unitario = $4, data_entrega = $5, observacao = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.NFe, entrada.Quantidade, entrada.ValorUnitario,
		entrada.DataEntrega, entrada.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update entrada: %w", err)
	}
	return nil
}

// List lista entradas com paginação; itemID vazio lista todas.
func (r *EntradaRepo) List(itemID string, limit, offset int) ([]*entity.Entrada, error) {
	query := `
		SELECT ` + entradaColunas + `
		FROM entradas
		WHERE $1 = '' OR item_id::text = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entrada
	for rows.Next() {
		var e entity.Entrada
		if err := rows.Scan(&e.ID, &e.ItemID, &e.NFe, &e.Quantidade, &e.ValorUnitario,
			&e.DataEntrega, &e.Observacao, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UltimosValoresUnitarios devolve, por item, o valor unitário da entrada mais
// recente que informou valor (> 0).
func (r *EntradaRepo) UltimosValoresUnitarios() (map[string]decimal.Decimal, error) {
	query := `
		SELECT DISTINCT ON (item_id) item_id, valor_unitario
		FROM entradas
		WHERE valor_unitario > 0
		ORDER BY item_id, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ultimos valores: %w", err)
	}
	defer rows.Close()
	valores := make(map[string]decimal.Decimal)
	for rows.Next() {
		var itemID string
		var valor decimal.Decimal
		if err := rows.Scan(&itemID, &valor); err != nil {
			return nil, fmt.Errorf("scan valor: %w", err)
		}
		valores[itemID] = valor
	}
	return valores, rows.Err()
}

// Delete remove uma entrada por ID.
func (r *EntradaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entradas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entrada: %w", err)
	}
	return nil
}
