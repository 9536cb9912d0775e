package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status eines Kassenverkaufs. In diesem Flow immer "verarbeitet".
const SaleStatusVerarbeitet = "verarbeitet"

// KassaSale ist der unveränderliche Datensatz eines abgeschlossenen Verkaufs.
// KassaName und WareName werden denormalisiert gespeichert, damit der Datensatz
// auch nach Umbenennung oder Löschung der Referenzen lesbar bleibt.
type KassaSale struct {
	ID               string
	KassaID          string
	KassaName        string
	WareID           string
	WareName         string
	Menge            decimal.Decimal
	Summe            decimal.Decimal // übermittelt oder Menge * Verkaufspreis
	Datum            time.Time
	Status           string
	BestandReduziert bool // ob der Bestand tatsächlich verringert wurde
	Nachbestellung   bool // ob der neue Bestand unter dem Mindestbestand liegt
	EventID          string // optionaler Idempotenzschlüssel des Terminals, leer = keiner
}
