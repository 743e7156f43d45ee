package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiprefeitura/almoxarifado-api/pkg/jwt"
)

const (
	secret  = "unit-test-secret"
	userID  = "00000000-0000-0000-0000-000000000001"
	usuario = "joao.souza"
	issuer  = "almoxarifado-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(secret, userID, usuario, true, issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, usuario, claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, issuer, claims.Issuer)
	assert.Equal(t, userID, claims.Subject)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", userID, usuario, false, issuer, 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, userID, usuario, false, issuer, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestParse_SecretIncorreto(t *testing.T) {
	tok, err := jwt.Generate(secret, userID, usuario, false, issuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("outro-secret", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}

func TestParse_TokenAdulterado(t *testing.T) {
	tok, err := jwt.Generate(secret, userID, usuario, false, issuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok+"x")
	assert.Error(t, err)
}
