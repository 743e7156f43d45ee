package repository

import "github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"

// LogRepository define o porto do histórico de movimentações.
// O histórico é append-only: não existe Update nem Delete.
type LogRepository interface {
	Append(log *entity.LogMovimentacao) error
	// List devolve os registros do mais recente para o mais antigo.
	List(limit, offset int) ([]*entity.LogMovimentacao, error)
	// ListAll devolve o histórico inteiro, mais recente primeiro (exportação).
	ListAll() ([]*entity.LogMovimentacao, error)
	Count() (int, error)
}
