package repository

import "github.com/kontorwerk/kassa-api/internal/domain/entity"

// WarenLogRepository definiert den Persistenz-Port für das Warenlog.
// Einträge sind unveränderlich; es gibt bewusst kein Update/Delete.
type WarenLogRepository interface {
	Create(entry *entity.WarenLog) error
	// List liefert Einträge absteigend nach Datum; wareID leer = alle Waren.
	List(wareID string, limit, offset int) ([]*entity.WarenLog, error)
}
