package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
)

// EntradaRepository define o porto de persistência para Entrada.
type EntradaRepository interface {
	Create(entrada *entity.Entrada) error
	GetByID(id string) (*entity.Entrada, error)
	Update(entrada *entity.Entrada) error
	List(itemID string, limit, offset int) ([]*entity.Entrada, error)
	// UltimosValoresUnitarios devolve, por item, o valor unitário da entrada
	// mais recente com valor informado (valorização do relatório de estoque).
	UltimosValoresUnitarios() (map[string]decimal.Decimal, error)
	Delete(id string) error
}
