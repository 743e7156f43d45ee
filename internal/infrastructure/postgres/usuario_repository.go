package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColunas = `id, username, senha_hash, is_admin, created_at, updated_at`

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de usuários. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário novo.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, username, senha_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Username, usuario.SenhaHash, usuario.IsAdmin,
		usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID (nil se não existe).
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.scanOne(`SELECT `+usuarioColunas+` FROM usuarios WHERE id = $1`, id)
}

// GetByUsername obtém um usuário pelo username (nil se não existe).
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	return r.scanOne(`SELECT `+usuarioColunas+` FROM usuarios WHERE username = $1`, username)
}

func (r *UsuarioRepo) scanOne(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.SenhaHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update atualiza username e flag de admin.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `UPDATE usuarios SET username = $2, is_admin = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Username, usuario.IsAdmin, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameJaExiste
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// UpdateSenha grava um novo hash de senha.
func (r *UsuarioRepo) UpdateSenha(id, senhaHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET senha_hash = $2, updated_at = now() WHERE id = $1`,
		id, senhaHash,
	)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}

// List lista usuários com paginação.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+usuarioColunas+` FROM usuarios ORDER BY username LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Username, &u.SenhaHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove um usuário por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
