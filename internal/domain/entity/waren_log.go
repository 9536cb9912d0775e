package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aktionen im Warenlog.
const (
	AktionVerkauf   = "Verkauf"
	AktionKorrektur = "Korrektur"
)

// Systemakteur für Einträge, die von einer Kassa statt einem Benutzer stammen.
const BenutzerSystemKassa = "system_kassa"

// WarenLog ist ein unveränderlicher Eintrag über eine bestandswirksame Aktion.
// Notiz enthält die menschenlesbare Beschreibung inkl. Bestand vorher/nachher.
type WarenLog struct {
	ID           string
	WareID       string
	WareName     string
	BenutzerID   string
	BenutzerName string
	Aktion       string // siehe Aktion*
	Menge        decimal.Decimal
	Notiz        string
	Datum        time.Time
}
