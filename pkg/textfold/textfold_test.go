package textfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Müsli", "musli"},
		{"Äpfel", "apfel"},
		{"Öl", "ol"},
		{"Über", "uber"},
		{"Maß", "maß"}, // ß ist kein diakritisches Zeichen
		{"Café", "cafe"},
		{"Brot", "brot"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), "Fold(%q)", tt.in)
	}
}

// Suchbegriff und Suchspalte müssen identisch gefaltet werden, sonst
// verfehlen sich Treffer mit und ohne Umlaut.
func TestFold_Symmetrie(t *testing.T) {
	assert.Equal(t, Fold("MÜSLIRIEGEL"), Fold("musliriegel"))
	assert.Equal(t, Fold("Käse"), Fold("KASE"))
}
