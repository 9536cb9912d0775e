package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWareRequest Body für POST /api/waren.
type CreateWareRequest struct {
	Name           string          `json:"name"`
	Beschreibung   string          `json:"beschreibung,omitempty"`
	Bestand        decimal.Decimal `json:"bestand"`
	Mindestbestand decimal.Decimal `json:"mindestbestand"`
	Verkaufspreis  decimal.Decimal `json:"verkaufspreis"`
	Einheit        string          `json:"einheit,omitempty"`
}

// UpdateWareRequest Body für PUT /api/waren/:id. Nil-Felder bleiben unverändert.
// Bestand ist absichtlich nicht enthalten: Bestandsänderungen laufen über den
// Webhook bzw. Korrekturen und landen im Warenlog.
type UpdateWareRequest struct {
	Name           *string          `json:"name,omitempty"`
	Beschreibung   *string          `json:"beschreibung,omitempty"`
	Mindestbestand *decimal.Decimal `json:"mindestbestand,omitempty"`
	Verkaufspreis  *decimal.Decimal `json:"verkaufspreis,omitempty"`
	Einheit        *string          `json:"einheit,omitempty"`
}

// WareResponse Darstellung einer Ware in Antworten.
type WareResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Beschreibung   string          `json:"beschreibung,omitempty"`
	Bestand        decimal.Decimal `json:"bestand"`
	Mindestbestand decimal.Decimal `json:"mindestbestand"`
	Verkaufspreis  decimal.Decimal `json:"verkaufspreis"`
	Einheit        string          `json:"einheit"`
	Nachbestellung bool            `json:"nachbestellung_noetig"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WareListResponse Listenantwort mit Paginierung.
type WareListResponse struct {
	Items []WareResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
