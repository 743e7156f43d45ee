package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase gestão de usuários (rotas exclusivas de admin, exceto a
// troca da própria senha).
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// Criar cadastra um usuário: hasheia a senha com bcrypt e persiste.
// ErrUsernameJaExiste se o username já está em uso.
func (uc *UsuarioUseCase) Criar(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	existente, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsernameJaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		Username:  in.Username,
		SenhaHash: string(hash),
		IsAdmin:   in.IsAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Atualizar muda username/flag de admin.
func (uc *UsuarioUseCase) Atualizar(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if in.Username != usuario.Username {
		outro, err := uc.usuarioRepo.GetByUsername(in.Username)
		if err != nil {
			return nil, err
		}
		if outro != nil && outro.ID != id {
			return nil, domain.ErrUsernameJaExiste
		}
	}
	usuario.Username = in.Username
	usuario.IsAdmin = in.IsAdmin
	usuario.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// AtualizarSenha troca a senha do próprio usuário, conferindo a antiga.
func (uc *UsuarioUseCase) AtualizarSenha(id string, in dto.AtualizarSenhaRequest) error {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.SenhaAntiga)); err != nil {
		return domain.ErrSenhaIncorreta
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.UpdateSenha(id, string(hash))
}

// Excluir remove um usuário.
func (uc *UsuarioUseCase) Excluir(id string) error {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	return uc.usuarioRepo.Delete(id)
}

// Listar lista usuários com paginação.
func (uc *UsuarioUseCase) Listar(page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	usuarios, err := uc.usuarioRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UsuarioListResponse{
		Usuarios: make([]dto.UsuarioResponse, 0, len(usuarios)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, u := range usuarios {
		out.Usuarios = append(out.Usuarios, *toUsuarioResponse(u))
	}
	return out, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
