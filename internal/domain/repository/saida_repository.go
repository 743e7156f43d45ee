package repository

import "github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"

// SaidaRepository define o porto de persistência para Saida.
type SaidaRepository interface {
	Create(saida *entity.Saida) error
	GetByID(id string) (*entity.Saida, error)
	Update(saida *entity.Saida) error
	List(itemID string, limit, offset int) ([]*entity.Saida, error)
	Delete(id string) error
}
