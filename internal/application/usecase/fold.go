package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldString normaliza una cadena para búsqueda: minúsculas y sin marcas
// diacríticas (NFD, quitar Mn, NFC). El transformador se construye por llamada
// porque la cadena encadenada no es segura para uso concurrente.
func foldString(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
