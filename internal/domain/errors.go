package domain

import "errors"

// Domänenfehler (ohne externe Abhängigkeiten).
var (
	ErrNotFound           = errors.New("ressource nicht gefunden")
	ErrUserNotFound       = errors.New("benutzer nicht gefunden")
	ErrEmailAlreadyExists = errors.New("e-mail ist bereits registriert")
	ErrInvalidInput       = errors.New("ungültige eingabe")
	ErrDuplicate          = errors.New("ressource bereits vorhanden")
	ErrUnauthorized       = errors.New("nicht autorisiert")
	ErrForbidden          = errors.New("zugriff verweigert")
	ErrConflict           = errors.New("konflikt mit aktuellem zustand")

	// ErrAmbiguousAPIKey: mehrere Kassen teilen sich denselben API-Key.
	// Wird als Konfigurationsfehler abgelehnt statt stillschweigend die erste zu nehmen.
	ErrAmbiguousAPIKey = errors.New("api-key ist mehreren kassen zugeordnet")
)
