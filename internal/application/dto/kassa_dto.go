package dto

import "time"

// CreateKassaRequest Body für POST /api/kassen. Der API-Key wird serverseitig erzeugt.
type CreateKassaRequest struct {
	Name        string `json:"name"`
	KassaNummer string `json:"kassa_nummer"`
}

// KassaResponse Darstellung eines Kassenterminals.
// APIKey wird nur beim Anlegen und beim Schlüsselwechsel zurückgegeben.
type KassaResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	KassaNummer string     `json:"kassa_nummer"`
	APIKey      string     `json:"api_key,omitempty"`
	Status      string     `json:"status"`
	LetzteSync  *time.Time `json:"letzte_synchronisation,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// KassaListResponse Listenantwort mit Paginierung.
type KassaListResponse struct {
	Items []KassaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
