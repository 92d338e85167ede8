package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD), descarta marcas combinantes y recompone (NFC).
var removeDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// SearchTerm normaliza un término de búsqueda: minúsculas y sin tildes,
// para que "camión" y "CAMION" encuentren lo mismo.
func SearchTerm(s string) string {
	out, _, err := transform.String(removeDiacritics, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
