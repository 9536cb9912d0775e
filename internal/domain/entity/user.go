package entity

import "time"

// Benutzerrollen der Verwaltungs-API.
const (
	RoleAdmin   = "admin"
	RoleLager   = "lager"
	RoleVerkauf = "verkauf"
)

// User ist ein Benutzer der Verwaltungs-API (nicht der Kassen-Webhook).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // siehe Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
