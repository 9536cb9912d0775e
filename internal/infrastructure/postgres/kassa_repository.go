package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

var _ repository.KassaRepository = (*KassaRepo)(nil)

// KassaRepo Implementierung des KassaRepository-Ports auf PostgreSQL (Pool oder Tx).
type KassaRepo struct {
	q Querier
}

// NewKassaRepository baut den Persistenz-Adapter. Pool oder Tx übergeben (Querier).
func NewKassaRepository(q Querier) *KassaRepo {
	return &KassaRepo{q: q}
}

const kassaColumns = `id, name, kassa_nummer, api_key, status, letzte_synchronisation, created_at, updated_at`

// Create persistiert ein neues Terminal.
func (r *KassaRepo) Create(kassa *entity.Kassa) error {
	query := `
		INSERT INTO kassen (id, name, kassa_nummer, api_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		kassa.ID, kassa.Name, kassa.KassaNummer, kassa.APIKey, kassa.Status,
		kassa.CreatedAt, kassa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kassa: %w", err)
	}
	return nil
}

// GetByID liefert ein Terminal oder nil.
func (r *KassaRepo) GetByID(id string) (*entity.Kassa, error) {
	query := `SELECT ` + kassaColumns + ` FROM kassen WHERE id = $1`
	k, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get kassa: %w", err)
	}
	return k, nil
}

// FindByAPIKey liefert alle Kassen mit diesem API-Key. api_key hat zwar einen
// Unique-Index, die Mehrdeutigkeit wird aber zusätzlich im Use-Case abgelehnt.
func (r *KassaRepo) FindByAPIKey(apiKey string) ([]*entity.Kassa, error) {
	query := `SELECT ` + kassaColumns + ` FROM kassen WHERE api_key = $1`
	rows, err := r.q.Query(context.Background(), query, apiKey)
	if err != nil {
		return nil, fmt.Errorf("find kassa by api key: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kassa
	for rows.Next() {
		k, err := scanKassaRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, rows.Err()
}

// List liefert Terminals mit Paginierung.
func (r *KassaRepo) List(limit, offset int) ([]*entity.Kassa, error) {
	query := `SELECT ` + kassaColumns + ` FROM kassen ORDER BY kassa_nummer LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kassen: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kassa
	for rows.Next() {
		k, err := scanKassaRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, rows.Err()
}

// UpdateSync setzt Status und Zeitpunkt der letzten Synchronisation.
func (r *KassaRepo) UpdateSync(id, status string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE kassen SET status = $2, letzte_synchronisation = $3, updated_at = now() WHERE id = $1`,
		id, status, at,
	)
	if err != nil {
		return fmt.Errorf("update kassa sync: %w", err)
	}
	return nil
}

// UpdateAPIKey ersetzt den API-Key (Schlüsselwechsel).
func (r *KassaRepo) UpdateAPIKey(id, apiKey string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE kassen SET api_key = $2, updated_at = now() WHERE id = $1`,
		id, apiKey,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update kassa api key: %w", err)
	}
	return nil
}

// Delete entfernt ein Terminal.
func (r *KassaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kassen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kassa: %w", err)
	}
	return nil
}

func (r *KassaRepo) scanOne(row pgx.Row) (*entity.Kassa, error) {
	var k entity.Kassa
	err := row.Scan(&k.ID, &k.Name, &k.KassaNummer, &k.APIKey, &k.Status,
		&k.LetzteSync, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}

func scanKassaRow(rows pgx.Rows) (*entity.Kassa, error) {
	var k entity.Kassa
	if err := rows.Scan(&k.ID, &k.Name, &k.KassaNummer, &k.APIKey, &k.Status,
		&k.LetzteSync, &k.CreatedAt, &k.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan kassa: %w", err)
	}
	return &k, nil
}
