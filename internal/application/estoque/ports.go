package estoque

import (
	"context"

	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela transação. Garante a atomicidade do ledger:
// movimentação, quantidade do item e registro no histórico são persistidos
// juntos ou nenhum deles é.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		entradaRepo repository.EntradaRepository,
		saidaRepo repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error) error
}
