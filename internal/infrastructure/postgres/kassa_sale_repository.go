package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

var _ repository.KassaSaleRepository = (*KassaSaleRepo)(nil)

// KassaSaleRepo Implementierung des KassaSaleRepository-Ports auf PostgreSQL (Pool oder Tx).
// Verkäufe werden nur eingefügt und gelesen, nie verändert.
type KassaSaleRepo struct {
	q Querier
}

// NewKassaSaleRepository baut den Persistenz-Adapter. Pool oder Tx übergeben (Querier).
func NewKassaSaleRepository(q Querier) *KassaSaleRepo {
	return &KassaSaleRepo{q: q}
}

const saleColumns = `id, kassa_id, kassa_name, ware_id, ware_name, menge, summe, datum, status, bestand_reduziert, nachbestellung_noetig, event_id`

// Create fügt einen Verkauf ein. event_id ist NULL, wenn das Terminal keinen
// Idempotenzschlüssel mitschickt; der Unique-Index greift dann nicht.
func (r *KassaSaleRepo) Create(sale *entity.KassaSale) error {
	query := `
		INSERT INTO kassa_verkaeufe (id, kassa_id, kassa_name, ware_id, ware_name, menge, summe, datum, status, bestand_reduziert, nachbestellung_noetig, event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.KassaID, sale.KassaName, sale.WareID, sale.WareName,
		sale.Menge, sale.Summe, sale.Datum, sale.Status,
		sale.BestandReduziert, sale.Nachbestellung, nullIfEmpty(sale.EventID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert verkauf: %w", err)
	}
	return nil
}

// GetByID liefert einen Verkauf oder nil.
func (r *KassaSaleRepo) GetByID(id string) (*entity.KassaSale, error) {
	query := `SELECT ` + saleColumns + ` FROM kassa_verkaeufe WHERE id = $1`
	return scanSale(r.q.QueryRow(context.Background(), query, id), "get verkauf")
}

// GetByEventID liefert den Verkauf zu einem Idempotenzschlüssel oder nil.
func (r *KassaSaleRepo) GetByEventID(eventID string) (*entity.KassaSale, error) {
	query := `SELECT ` + saleColumns + ` FROM kassa_verkaeufe WHERE event_id = $1`
	return scanSale(r.q.QueryRow(context.Background(), query, eventID), "get verkauf by event")
}

// List liefert Verkäufe absteigend nach Datum, mit optionalen Filtern.
func (r *KassaSaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.KassaSale, error) {
	query := `SELECT ` + saleColumns + ` FROM kassa_verkaeufe WHERE 1=1`
	args := []any{}
	if filter.KassaID != "" {
		args = append(args, filter.KassaID)
		query += ` AND kassa_id = $` + strconv.Itoa(len(args))
	}
	if filter.WareID != "" {
		args = append(args, filter.WareID)
		query += ` AND ware_id = $` + strconv.Itoa(len(args))
	}
	if filter.Von != nil {
		args = append(args, *filter.Von)
		query += ` AND datum >= $` + strconv.Itoa(len(args))
	}
	if filter.Bis != nil {
		args = append(args, *filter.Bis)
		query += ` AND datum < $` + strconv.Itoa(len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY datum DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list verkaeufe: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListByDay liefert alle Verkäufe eines Kalendertags (Servertageszone).
func (r *KassaSaleRepo) ListByDay(day time.Time) ([]*entity.KassaSale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	query := `SELECT ` + saleColumns + ` FROM kassa_verkaeufe WHERE datum >= $1 AND datum < $2 ORDER BY datum`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list verkaeufe by day: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.KassaSale, error) {
	var list []*entity.KassaSale
	for rows.Next() {
		var s entity.KassaSale
		var eventID *string
		if err := rows.Scan(&s.ID, &s.KassaID, &s.KassaName, &s.WareID, &s.WareName,
			&s.Menge, &s.Summe, &s.Datum, &s.Status,
			&s.BestandReduziert, &s.Nachbestellung, &eventID); err != nil {
			return nil, fmt.Errorf("scan verkauf: %w", err)
		}
		if eventID != nil {
			s.EventID = *eventID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row, op string) (*entity.KassaSale, error) {
	var s entity.KassaSale
	var eventID *string
	err := row.Scan(&s.ID, &s.KassaID, &s.KassaName, &s.WareID, &s.WareName,
		&s.Menge, &s.Summe, &s.Datum, &s.Status,
		&s.BestandReduziert, &s.Nachbestellung, &eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if eventID != nil {
		s.EventID = *eventID
	}
	return &s, nil
}
