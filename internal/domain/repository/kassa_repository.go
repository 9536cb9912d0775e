package repository

import (
	"time"

	"github.com/kontorwerk/kassa-api/internal/domain/entity"
)

// KassaRepository definiert den Persistenz-Port für Kassenterminals.
type KassaRepository interface {
	Create(kassa *entity.Kassa) error
	GetByID(id string) (*entity.Kassa, error)
	// FindByAPIKey liefert alle Kassen mit diesem API-Key. Mehr als ein Treffer
	// ist ein Konfigurationsfehler und wird vom Aufrufer abgelehnt.
	FindByAPIKey(apiKey string) ([]*entity.Kassa, error)
	List(limit, offset int) ([]*entity.Kassa, error)
	// UpdateSync setzt Status und Zeitpunkt der letzten Synchronisation.
	UpdateSync(id, status string, at time.Time) error
	UpdateAPIKey(id, apiKey string) error
	Delete(id string) error
}
