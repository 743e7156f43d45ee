package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada registra a chegada de mercadoria para um item: nota fiscal,
// quantidade, data de entrega e observação livre. ValorUnitario é o valor
// da linha na NF-e quando informado (usado no relatório de valorização).
type Entrada struct {
	ID            string
	ItemID        string
	NFe           string
	Quantidade    int
	ValorUnitario decimal.Decimal
	DataEntrega   time.Time
	Observacao    string
	CreatedAt     time.Time
	CreatedBy     string // username de quem registrou
}
