package repository

import "github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	UpdateSenha(id, senhaHash string) error
	List(limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) error
}
