package postgres

import (
	"context"
	"fmt"

	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

var _ repository.WarenLogRepository = (*WarenLogRepo)(nil)

// WarenLogRepo Implementierung des WarenLogRepository-Ports auf PostgreSQL (Pool oder Tx).
// Append-only: Einträge werden nie verändert oder gelöscht.
type WarenLogRepo struct {
	q Querier
}

// NewWarenLogRepository baut den Persistenz-Adapter. Pool oder Tx übergeben (Querier).
func NewWarenLogRepository(q Querier) *WarenLogRepo {
	return &WarenLogRepo{q: q}
}

// Create fügt einen Logeintrag ein.
func (r *WarenLogRepo) Create(entry *entity.WarenLog) error {
	query := `
		INSERT INTO waren_log (id, ware_id, ware_name, benutzer_id, benutzer_name, aktion, menge, notiz, datum)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.WareID, entry.WareName, entry.BenutzerID, entry.BenutzerName,
		entry.Aktion, entry.Menge, entry.Notiz, entry.Datum,
	)
	if err != nil {
		return fmt.Errorf("insert warenlog: %w", err)
	}
	return nil
}

// List liefert Einträge absteigend nach Datum; wareID leer = alle Waren.
func (r *WarenLogRepo) List(wareID string, limit, offset int) ([]*entity.WarenLog, error) {
	query := `
		SELECT id, ware_id, ware_name, benutzer_id, benutzer_name, aktion, menge, notiz, datum
		FROM waren_log
		WHERE ($1 = '' OR ware_id = $1)
		ORDER BY datum DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, wareID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warenlog: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarenLog
	for rows.Next() {
		var e entity.WarenLog
		if err := rows.Scan(&e.ID, &e.WareID, &e.WareName, &e.BenutzerID, &e.BenutzerName,
			&e.Aktion, &e.Menge, &e.Notiz, &e.Datum); err != nil {
			return nil, fmt.Errorf("scan warenlog: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
