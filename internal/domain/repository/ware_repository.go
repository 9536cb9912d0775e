package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kontorwerk/kassa-api/internal/domain/entity"
)

// WareRepository definiert den Persistenz-Port für Waren (DIP).
type WareRepository interface {
	Create(ware *entity.Ware) error
	GetByID(id string) (*entity.Ware, error)
	// GetForUpdate liest die Ware und sperrt die Zeile (SELECT FOR UPDATE).
	// Nur innerhalb einer Transaktion sinnvoll.
	GetForUpdate(id string) (*entity.Ware, error)
	Update(ware *entity.Ware) error
	// UpdateBestand schreibt ausschließlich den Bestand (Kassen-Webhook).
	UpdateBestand(id string, bestand decimal.Decimal) error
	List(search string, limit, offset int) ([]*entity.Ware, error)
	Delete(id string) error
}
