package entity

import "time"

// Saida registra a retirada de mercadoria: secretaria de destino, número de
// patrimônio e, quando houver, o ticket do chamado que originou a retirada.
type Saida struct {
	ID         string
	ItemID     string
	Ticket     string
	Patrimonio string
	Secretaria string
	Quantidade int
	DataSaida  time.Time
	CreatedAt  time.Time
	CreatedBy  string
}
