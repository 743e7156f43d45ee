package dto

import "time"

// CreateItemRequest entrada para cadastrar um item. A quantidade inicia em
// zero; só movimentações a alteram.
type CreateItemRequest struct {
	Codigo string `json:"codigo" validate:"required,min=1,max=50"`
	Nome   string `json:"nome" validate:"required,min=1,max=200"`
}

// UpdateItemRequest entrada para atualizar código/nome de um item.
type UpdateItemRequest struct {
	Codigo string `json:"codigo" validate:"required,min=1,max=50"`
	Nome   string `json:"nome" validate:"required,min=1,max=200"`
}

// ItemResponse saída de um item com a quantidade corrente.
type ItemResponse struct {
	ID         string    `json:"id"`
	Codigo     string    `json:"codigo"`
	Nome       string    `json:"nome"`
	Quantidade int       `json:"quantidade_atual"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemListResponse listagem paginada de itens.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
