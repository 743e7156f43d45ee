package dto

import "time"

// LoginRequest entrada para login (username + senha).
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=60"`
	Senha    string `json:"senha" validate:"required,min=1"`
}

// LoginResponse token de acesso mais os dados do usuário autenticado.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"` // sempre "bearer"
	Usuario     UsuarioResponse `json:"usuario"`
}

// CreateUsuarioRequest entrada para criar um usuário (admin). A senha chega em
// texto e é hasheada no use case.
type CreateUsuarioRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Senha    string `json:"senha" validate:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateUsuarioRequest entrada para atualizar username/flag de admin.
type UpdateUsuarioRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	IsAdmin  bool   `json:"is_admin"`
}

// AtualizarSenhaRequest troca de senha do próprio usuário.
type AtualizarSenhaRequest struct {
	SenhaAntiga string `json:"senha_antiga" validate:"required,min=1"`
	SenhaNova   string `json:"senha_nova" validate:"required,min=8"`
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse listagem paginada de usuários.
type UsuarioListResponse struct {
	Usuarios []UsuarioResponse `json:"usuarios"`
	Page     PageResponse      `json:"page"`
}
