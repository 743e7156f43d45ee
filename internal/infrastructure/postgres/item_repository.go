package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColunas = `id, codigo, nome, quantidade, created_at, updated_at`

// ItemRepo implementação de ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador de itens. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um novo item. Quantidade inicia em zero.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO itens (id, codigo, nome, quantidade, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Codigo, item.Nome, item.Quantidade, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID (nil se não existe).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.scanOne(`SELECT `+itemColunas+` FROM itens WHERE id = $1`, id)
}

// GetByCodigo obtém um item pelo código único (nil se não existe).
func (r *ItemRepo) GetByCodigo(codigo string) (*entity.Item, error) {
	return r.scanOne(`SELECT `+itemColunas+` FROM itens WHERE codigo = $1`, codigo)
}

// GetForUpdate obtém o item e bloqueia a linha (SELECT FOR UPDATE). Só faz
// sentido dentro de transação; é o que serializa movimentações por item.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.scanOne(`SELECT `+itemColunas+` FROM itens WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.Codigo, &i.Nome, &i.Quantidade, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update atualiza código e nome. Quantidade fica de fora: só UpdateQuantidade a toca.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `UPDATE itens SET codigo = $2, nome = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Codigo, item.Nome, item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantidade grava a nova quantidade corrente (chamado só pelo coordenador).
func (r *ItemRepo) UpdateQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE itens SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List lista itens com paginação. busca chega normalizada (minúscula, sem
// acento); o lado do banco é normalizado com translate para casar.
func (r *ItemRepo) List(busca string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColunas + `
		FROM itens
		WHERE $1 = ''
		   OR lower(codigo) LIKE '%' || $1 || '%'
		   OR translate(lower(nome), 'áàâãäéèêëíìîïóòôõöúùûüç', 'aaaaaeeeeiiiiooooouuuuc') LIKE '%' || $1 || '%'
		ORDER BY codigo
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, busca, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	return scanItens(rows)
}

// ListAll devolve o catálogo inteiro ordenado por código.
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+itemColunas+` FROM itens ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list all itens: %w", err)
	}
	defer rows.Close()
	return scanItens(rows)
}

func scanItens(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Codigo, &i.Nome, &i.Quantidade, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete remove um item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM itens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
