package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

var _ repository.SaidaRepository = (*SaidaRepo)(nil)

const saidaColunas = `id, item_id, ticket, patrimonio, secretaria, quantidade, data_saida, created_at, created_by`

// SaidaRepo implementação de SaidaRepository sobre PostgreSQL (usável com pool ou tx).
type SaidaRepo struct {
	q Querier
}

// NewSaidaRepository constrói o adaptador de saídas. Passar pool ou tx (Querier).
func NewSaidaRepository(q Querier) *SaidaRepo {
	return &SaidaRepo{q: q}
}

// Create persiste uma saída.
func (r *SaidaRepo) Create(saida *entity.Saida) error {
	query := `
		INSERT INTO saidas (id, item_id, ticket, patrimonio, secretaria, quantidade, data_saida, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		saida.ID, saida.ItemID, saida.Ticket, saida.Patrimonio, saida.Secretaria,
		saida.Quantidade, saida.DataSaida, saida.CreatedAt, saida.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert saida: %w", err)
	}
	return nil
}

// GetByID obtém uma saída por ID (nil se não existe).
func (r *SaidaRepo) GetByID(id string) (*entity.Saida, error) {
	var s entity.Saida
	err := r.q.QueryRow(context.Background(),
		`SELECT `+saidaColunas+` FROM saidas WHERE id = $1`, id).Scan(
		&s.ID, &s.ItemID, &s.Ticket, &s.Patrimonio, &s.Secretaria,
		&s.Quantidade, &s.DataSaida, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saida: %w", err)
	}
	return &s, nil
}

// Update atualiza os campos editáveis de uma saída.
func (r *SaidaRepo) Update(saida *entity.Saida) error {
	query := `
		UPDATE saidas
		SET ticket = $2, patrimonio = $3, secretaria = $4, quantidade = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		saida.ID, saida.Ticket, saida.Patrimonio, saida.Secretaria, saida.Quantidade,
	)
	if err != nil {
		return fmt.Errorf("update saida: %w", err)
	}
	return nil
}

// List lista saídas com paginação; itemID vazio lista todas.
func (r *SaidaRepo) List(itemID string, limit, offset int) ([]*entity.Saida, error) {
	query := `
		SELECT ` + saidaColunas + `
		FROM saidas
		WHERE $1 = '' OR item_id::text = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Saida
	for rows.Next() {
		var s entity.Saida
		if err := rows.Scan(&s.ID, &s.ItemID, &s.Ticket, &s.Patrimonio, &s.Secretaria,
			&s.Quantidade, &s.DataSaida, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete remove uma saída por ID.
func (r *SaidaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM saidas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saida: %w", err)
	}
	return nil
}
