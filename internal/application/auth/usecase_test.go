package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiprefeitura/almoxarifado-api/internal/application/auth"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	pkgjwt "github.com/tiprefeitura/almoxarifado-api/pkg/jwt"
)

// fakeUsuarioRepo guarda um único usuário, suficiente para o login.
type fakeUsuarioRepo struct {
	usuario *entity.Usuario
}

func (r *fakeUsuarioRepo) Create(*entity.Usuario) error                { return nil }
func (r *fakeUsuarioRepo) GetByID(string) (*entity.Usuario, error)     { return nil, nil }
func (r *fakeUsuarioRepo) Update(*entity.Usuario) error                { return nil }
func (r *fakeUsuarioRepo) UpdateSenha(string, string) error            { return nil }
func (r *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error)    { return nil, nil }
func (r *fakeUsuarioRepo) Delete(string) error                         { return nil }
func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.Username == username {
		c := *r.usuario
		return &c, nil
	}
	return nil, nil
}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte-123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUsuarioRepo{usuario: &entity.Usuario{
		ID:        "00000000-0000-0000-0000-000000000001",
		Username:  "maria",
		SenhaHash: string(hash),
		IsAdmin:   true,
	}}
	secret := "auth-test-secret"
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "almoxarifado-api-test"})
	return uc, secret
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc, secret := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "maria", resp.Usuario.Username)
	assert.True(t, resp.Usuario.IsAdmin)

	claims, err := pkgjwt.Parse(secret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "ninguem", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado,
		"usuário inexistente e senha errada devem ser indistinguíveis")
}
