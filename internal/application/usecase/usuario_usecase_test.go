package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
)

func TestUsuarioCriar_HasheiaSenha(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	resp, err := uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "senha-forte-123", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)

	guardado := repo.usuarios[resp.ID]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "senha-forte-123", guardado.SenhaHash, "a senha nunca é persistida em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.SenhaHash), []byte("senha-forte-123")))
}

func TestUsuarioCriar_UsernameJaExiste(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "outra-senha-456"})
	assert.ErrorIs(t, err, domain.ErrUsernameJaExiste)
}

func TestUsuarioAtualizarSenha(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	resp, err := uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	// Senha antiga errada → recusa sem alterar nada.
	err = uc.AtualizarSenha(resp.ID, dto.AtualizarSenhaRequest{SenhaAntiga: "errada", SenhaNova: "nova-senha-456"})
	assert.ErrorIs(t, err, domain.ErrSenhaIncorreta)

	// Senha antiga correta → hash trocado.
	err = uc.AtualizarSenha(resp.ID, dto.AtualizarSenhaRequest{SenhaAntiga: "senha-forte-123", SenhaNova: "nova-senha-456"})
	require.NoError(t, err)

	guardado := repo.usuarios[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.SenhaHash), []byte("nova-senha-456")))
}

func TestUsuarioAtualizar_UsernameDeOutro(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	r1, err := uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)
	_, err = uc.Criar(dto.CreateUsuarioRequest{Username: "joao", Senha: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.Atualizar(r1.ID, dto.UpdateUsuarioRequest{Username: "joao"})
	assert.ErrorIs(t, err, domain.ErrUsernameJaExiste)
}

func TestUsuarioExcluir_NaoEncontrado(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())
	assert.ErrorIs(t, uc.Excluir("nao-existe"), domain.ErrUsuarioNaoEncontrado)
}

func TestUsuarioListar_NaoExpoeHash(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Criar(dto.CreateUsuarioRequest{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	resp, err := uc.Listar(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Usuarios, 1)
	assert.Equal(t, "maria", resp.Usuarios[0].Username)
}
