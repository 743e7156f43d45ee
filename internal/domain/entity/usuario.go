package entity

import "time"

// Usuario conta de acesso interna. Somente admins gerenciam usuários.
type Usuario struct {
	ID        string
	Username  string
	SenhaHash string // bcrypt, nunca a senha em claro
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
