// Package textfold normalisiert Suchbegriffe und Suchspalten, damit
// "Müsli" und "Musli" denselben Treffer liefern.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold entfernt diakritische Zeichen und wandelt in Kleinbuchstaben um.
// "ß" bleibt erhalten; "ä" wird zu "a", "Ö" zu "o" usw.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
