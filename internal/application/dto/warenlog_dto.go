package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarenLogResponse Darstellung eines Warenlog-Eintrags.
type WarenLogResponse struct {
	ID           string          `json:"id"`
	WareID       string          `json:"ware_id"`
	WareName     string          `json:"ware_name"`
	BenutzerID   string          `json:"benutzer_id"`
	BenutzerName string          `json:"benutzer_name"`
	Aktion       string          `json:"aktion"`
	Menge        decimal.Decimal `json:"menge"`
	Notiz        string          `json:"notiz"`
	Datum        time.Time       `json:"datum"`
}

// WarenLogListResponse Listenantwort mit Paginierung.
type WarenLogListResponse struct {
	Items []WarenLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
