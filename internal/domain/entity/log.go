package entity

import "time"

// Tipos de registro no histórico de movimentações.
const (
	LogTipoEntrada  = "ENTRADA"
	LogTipoSaida    = "SAÍDA"
	LogTipoCorrecao = "CORREÇÃO" // edição ou estorno de movimentação
)

// LogMovimentacao é o registro imutável de uma alteração de quantidade:
// append-only, nunca editado nem excluído. ItemNome é desnormalizado de
// propósito para que o histórico continue legível se o item for removido.
type LogMovimentacao struct {
	ID       string
	Tipo     string // ENTRADA, SAÍDA ou CORREÇÃO
	ItemNome string
	Delta    int // com sinal: positivo soma no estoque, negativo subtrai
	Detalhe  string
	Usuario  string
	Data     time.Time
}
