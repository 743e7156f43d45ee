package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarEntradaRequest entrada para registrar a chegada de mercadoria.
type RegistrarEntradaRequest struct {
	ItemID        string           `json:"item_id" validate:"required,uuid"`
	NFe           string           `json:"nfe" validate:"required,min=1,max=60"`
	Quantidade    int              `json:"quantidade" validate:"required,gt=0"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario" validate:"omitempty"`
	DataEntrega   time.Time        `json:"data_entrega" validate:"required"`
	Observacao    string           `json:"observacao" validate:"omitempty,max=500"`
}

// EditarEntradaRequest entrada para corrigir uma entrada já lançada.
type EditarEntradaRequest struct {
	NFe           string           `json:"nfe" validate:"required,min=1,max=60"`
	Quantidade    int              `json:"quantidade" validate:"required,gt=0"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario" validate:"omitempty"`
	DataEntrega   time.Time        `json:"data_entrega" validate:"required"`
	Observacao    string           `json:"observacao" validate:"omitempty,max=500"`
}

// EntradaResponse saída de uma entrada.
type EntradaResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	NFe           string          `json:"nfe"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	DataEntrega   time.Time       `json:"data_entrega"`
	Observacao    string          `json:"observacao,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// EntradaListResponse listagem paginada de entradas.
type EntradaListResponse struct {
	Entradas []EntradaResponse `json:"entradas"`
	Page     PageResponse      `json:"page"`
}

// RegistrarSaidaRequest entrada para registrar uma retirada de estoque.
type RegistrarSaidaRequest struct {
	ItemID     string `json:"item_id" validate:"required,uuid"`
	Ticket     string `json:"ticket" validate:"omitempty,max=60"`
	Patrimonio string `json:"patrimonio" validate:"required,min=1,max=60"`
	Secretaria string `json:"secretaria" validate:"required,min=1,max=120"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

// EditarSaidaRequest entrada para corrigir uma saída já lançada.
type EditarSaidaRequest struct {
	Ticket     string `json:"ticket" validate:"omitempty,max=60"`
	Patrimonio string `json:"patrimonio" validate:"required,min=1,max=60"`
	Secretaria string `json:"secretaria" validate:"required,min=1,max=120"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

// SaidaResponse saída de uma retirada.
type SaidaResponse struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	Ticket     string    `json:"ticket,omitempty"`
	Patrimonio string    `json:"patrimonio"`
	Secretaria string    `json:"secretaria"`
	Quantidade int       `json:"quantidade"`
	DataSaida  time.Time `json:"data_saida"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by,omitempty"`
}

// SaidaListResponse listagem paginada de saídas.
type SaidaListResponse struct {
	Saidas []SaidaResponse `json:"saidas"`
	Page   PageResponse    `json:"page"`
}

// LogResponse registro do histórico de movimentações.
type LogResponse struct {
	ID       string    `json:"id"`
	Tipo     string    `json:"tipo"`
	ItemNome string    `json:"item_nome"`
	Delta    int       `json:"quantidade_movimentada"`
	Detalhe  string    `json:"detalhe,omitempty"`
	Usuario  string    `json:"usuario,omitempty"`
	Data     time.Time `json:"data"`
}

// LogListResponse listagem paginada do histórico.
type LogListResponse struct {
	Logs []LogResponse `json:"logs"`
	Page PageResponse  `json:"page"`
}
