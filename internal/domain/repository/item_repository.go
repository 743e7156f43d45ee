package repository

import "github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"

// ItemRepository define o porto de persistência para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCodigo(codigo string) (*entity.Item, error)
	// GetForUpdate bloqueia a linha do item (SELECT FOR UPDATE). Usado pelo
	// coordenador de movimentações dentro de transação.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateQuantidade grava a nova quantidade corrente. Só o coordenador chama.
	UpdateQuantidade(id string, quantidade int) error
	List(busca string, limit, offset int) ([]*entity.Item, error)
	// ListAll devolve o catálogo inteiro ordenado por código (relatórios).
	ListAll() ([]*entity.Item, error)
	Delete(id string) error
}
