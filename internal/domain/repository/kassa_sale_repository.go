package repository

import (
	"time"

	"github.com/kontorwerk/kassa-api/internal/domain/entity"
)

// SaleFilter Filterkriterien für die Verkaufsliste.
type SaleFilter struct {
	KassaID string
	WareID  string
	Von     *time.Time
	Bis     *time.Time
}

// KassaSaleRepository definiert den Persistenz-Port für Kassenverkäufe.
// Verkäufe sind nach dem Anlegen unveränderlich.
type KassaSaleRepository interface {
	Create(sale *entity.KassaSale) error
	GetByID(id string) (*entity.KassaSale, error)
	// GetByEventID liefert den Verkauf zu einem Idempotenzschlüssel, nil wenn keiner existiert.
	GetByEventID(eventID string) (*entity.KassaSale, error)
	List(filter SaleFilter, limit, offset int) ([]*entity.KassaSale, error)
	// ListByDay liefert alle Verkäufe eines Kalendertags (für den Tagesbericht).
	ListByDay(day time.Time) ([]*entity.KassaSale, error)
}
