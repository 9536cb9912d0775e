package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ware repräsentiert einen Artikel des Lagerbestands.
// Bestand wird ausschließlich über Kassenverkäufe und manuelle Korrekturen verändert.
type Ware struct {
	ID             string
	Name           string
	Beschreibung   string
	Bestand        decimal.Decimal // aktueller Lagerbestand, nie negativ
	Mindestbestand decimal.Decimal // Schwelle, unter der Nachbestellung nötig ist
	Verkaufspreis  decimal.Decimal
	Einheit        string // Stück, kg, l, ...
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NachbestellungNoetig meldet, ob der Bestand unter dem Mindestbestand liegt.
func (w *Ware) NachbestellungNoetig() bool {
	return w.Bestand.LessThan(w.Mindestbestand)
}
