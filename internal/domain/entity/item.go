package entity

import "time"

// Item é um item do catálogo do almoxarifado com a quantidade corrente em estoque.
// A quantidade só é alterada pelo coordenador de movimentações (application/estoque);
// os demais caminhos (cadastro, edição de código/nome) nunca a tocam.
type Item struct {
	ID         string
	Codigo     string // código patrimonial único (ex.: TEC-001)
	Nome       string
	Quantidade int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
