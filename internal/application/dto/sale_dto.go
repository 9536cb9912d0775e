package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleResponse Darstellung eines Kassenverkaufs.
type SaleResponse struct {
	ID               string          `json:"id"`
	KassaID          string          `json:"kassa_id"`
	KassaName        string          `json:"kassa_name"`
	WareID           string          `json:"ware_id"`
	WareName         string          `json:"ware_name"`
	Menge            decimal.Decimal `json:"menge"`
	Summe            decimal.Decimal `json:"summe"`
	Datum            time.Time       `json:"datum"`
	Status           string          `json:"status"`
	BestandReduziert bool            `json:"bestand_reduziert"`
	Nachbestellung   bool            `json:"nachbestellung_noetig"`
}

// SaleListResponse Listenantwort mit Paginierung.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// TagesberichtPosition eine Ware im Tagesbericht, aggregiert über alle Kassen.
type TagesberichtPosition struct {
	WareID   string          `json:"ware_id"`
	WareName string          `json:"ware_name"`
	Menge    decimal.Decimal `json:"menge"`
	Umsatz   decimal.Decimal `json:"umsatz"`
}

// TagesberichtResponse aggregierter Tagesabschluss (Z-Bericht) eines Kalendertags.
type TagesberichtResponse struct {
	Datum       string                 `json:"datum"` // YYYY-MM-DD
	Verkaeufe   int                    `json:"anzahl_verkaeufe"`
	Gesamtmenge decimal.Decimal        `json:"gesamtmenge"`
	Umsatz      decimal.Decimal        `json:"umsatz"`
	Positionen  []TagesberichtPosition `json:"positionen"`
}
