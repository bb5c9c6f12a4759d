package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/pkg/password"
)

// Caso 1: hash → verify round-trip con la contraseña correcta.
func TestHashVerify_RoundTrip(t *testing.T) {
	record, err := password.Hash("s3cret-emballage")
	require.NoError(t, err)
	require.NotEmpty(t, record)

	assert.True(t, password.Verify("s3cret-emballage", record),
		"la contraseña original debe verificar contra su propio hash")
}

// Caso 2: contraseña incorrecta → false.
func TestVerify_ContrasenaIncorrecta(t *testing.T) {
	record, err := password.Hash("correcta")
	require.NoError(t, err)

	assert.False(t, password.Verify("incorrecta", record))
}

// Caso 3: el formato del registro es "<dk hex>.<salt hex>".
func TestHash_FormatoDelRegistro(t *testing.T) {
	record, err := password.Hash("abc")
	require.NoError(t, err)

	parts := strings.Split(record, ".")
	require.Len(t, parts, 2, "el registro debe tener dos partes separadas por punto")
	assert.Len(t, parts[0], 128, "clave derivada de 64 bytes en hex")
	assert.Len(t, parts[1], 32, "salt de 16 bytes en hex")
}

// Caso 4: dos hashes de la misma contraseña difieren (salt aleatorio).
func TestHash_SaltAleatorio(t *testing.T) {
	a, err := password.Hash("misma")
	require.NoError(t, err)
	b, err := password.Hash("misma")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "cada hash debe llevar un salt distinto")
	assert.True(t, password.Verify("misma", a))
	assert.True(t, password.Verify("misma", b))
}

// Caso 5: registros malformados devuelven false, nunca panic.
func TestVerify_RegistroMalformado(t *testing.T) {
	cases := []string{
		"",
		"sin-separador",
		".",
		"abcdef.",
		".abcdef",
		"no-es-hex.tampoco",
		"abc123", // sin punto
	}
	for _, stored := range cases {
		assert.False(t, password.Verify("loquesea", stored),
			"registro %q debe fallar la verificación", stored)
	}
}
