// Package texto normaliza texto em português para busca: remove acentos e
// baixa a caixa, de modo que "Cabo de Força" case com "cabo de forca".
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var removerDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar remove diacríticos, baixa a caixa e apara espaços.
func Normalizar(s string) string {
	out, _, err := transform.String(removerDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
