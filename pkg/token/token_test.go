package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/pkg/token"
)

const testSecret = "secret-de-pruebas-unitarias"

func TestToken_GenerateAndParse(t *testing.T) {
	tok, err := token.Generate(testSecret, "sesion-123", "vitrine-test", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sesion-123", sid)
}

func TestToken_Expirado_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, "sesion-123", "vitrine-test", -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, "sesion-123", "vitrine-test", time.Hour)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestToken_SecretVacio_RetornaError(t *testing.T) {
	_, err := token.Generate("", "sesion-123", "vitrine-test", time.Hour)
	assert.Error(t, err)

	_, err = token.Parse("", "cualquier.cosa.aqui")
	assert.Error(t, err)
}
