// Package password implementa el hash de credenciales con scrypt.
// El registro se codifica como "<clave derivada hex>.<salt hex>" para poder
// verificar contra filas creadas por versiones anteriores del sistema.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Parámetros scrypt: memoria-duros, clave de 64 bytes y salt de 16 bytes.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

// Hash deriva una clave con salt aleatorio y devuelve el registro "<dk>.<salt>" en hex.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generar salt: %w", err)
	}
	dk, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("password: derivar clave: %w", err)
	}
	return hex.EncodeToString(dk) + "." + hex.EncodeToString(salt), nil
}

// Verify re-deriva la clave con el salt almacenado y compara en tiempo constante.
// Un registro malformado (sin separador, hex inválido) devuelve false, nunca panic.
func Verify(supplied, stored string) bool {
	hashedHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok || hashedHex == "" || saltHex == "" {
		return false
	}
	hashed, err := hex.DecodeString(hashedHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	dk, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	// subtle.ConstantTimeCompare devuelve 0 ante longitudes distintas sin
	// recorrer los buffers; no hay diferencia de timing explotable por longitud.
	if len(hashed) != len(dk) {
		return false
	}
	return subtle.ConstantTimeCompare(hashed, dk) == 1
}
