package entity

import "time"

// Kassenstatus.
const (
	KassaStatusVerbunden = "verbunden"
	KassaStatusGetrennt  = "getrennt"
)

// Kassa repräsentiert ein Kassenterminal (physisch oder virtuell), das sich
// über seinen API-Key am Webhook authentifiziert.
type Kassa struct {
	ID          string
	Name        string
	KassaNummer string
	APIKey      string
	Status      string     // siehe KassaStatus*
	LetzteSync  *time.Time // Zeitpunkt der letzten erfolgreichen Synchronisation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
