package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // quita diacríticos
	norm.NFC,
)

// Fold normaliza un texto para comparación: minúsculas, sin tildes, sin
// espacios sobrantes. "Café con Leche" y "cafe  CON leche" pliegan igual.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// FoldContains reporta si el texto contiene la consulta, ambos plegados.
func FoldContains(s, query string) bool {
	return strings.Contains(Fold(s), Fold(query))
}
