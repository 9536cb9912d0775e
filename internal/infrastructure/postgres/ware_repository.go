package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
	"github.com/kontorwerk/kassa-api/pkg/textfold"
)

var _ repository.WareRepository = (*WareRepo)(nil)

// WareRepo Implementierung des WareRepository-Ports auf PostgreSQL (Pool oder Tx).
// Die Spalte name_suche hält die gefaltete Form des Namens für die
// umlaut-unempfindliche Suche und wird bei Create/Update mitgeschrieben.
type WareRepo struct {
	q Querier
}

// NewWareRepository baut den Persistenz-Adapter. Pool oder Tx übergeben (Querier).
func NewWareRepository(q Querier) *WareRepo {
	return &WareRepo{q: q}
}

const wareColumns = `id, name, beschreibung, bestand, mindestbestand, verkaufspreis, einheit, created_at, updated_at`

// Create persistiert eine neue Ware.
func (r *WareRepo) Create(ware *entity.Ware) error {
	query := `
		INSERT INTO waren (id, name, beschreibung, bestand, mindestbestand, verkaufspreis, einheit, name_suche, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ware.ID, ware.Name, ware.Beschreibung, ware.Bestand, ware.Mindestbestand,
		ware.Verkaufspreis, ware.Einheit, textfold.Fold(ware.Name), ware.CreatedAt, ware.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ware: %w", err)
	}
	return nil
}

// GetByID liefert eine Ware oder nil.
func (r *WareRepo) GetByID(id string) (*entity.Ware, error) {
	query := `SELECT ` + wareColumns + ` FROM waren WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ware")
}

// GetForUpdate liest die Ware und sperrt die Zeile (SELECT FOR UPDATE).
// Nur innerhalb einer Transaktion sinnvoll; am Pool sperrt es nichts.
func (r *WareRepo) GetForUpdate(id string) (*entity.Ware, error) {
	query := `SELECT ` + wareColumns + ` FROM waren WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ware for update")
}

// Update schreibt die Stammdaten. Bestand wird hier nicht angefasst.
func (r *WareRepo) Update(ware *entity.Ware) error {
	query := `
		UPDATE waren
		SET name = $2, beschreibung = $3, mindestbestand = $4, verkaufspreis = $5,
		    einheit = $6, name_suche = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ware.ID, ware.Name, ware.Beschreibung, ware.Mindestbestand,
		ware.Verkaufspreis, ware.Einheit, textfold.Fold(ware.Name), ware.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ware: %w", err)
	}
	return nil
}

// UpdateBestand schreibt ausschließlich den Bestand (Kassen-Webhook).
func (r *WareRepo) UpdateBestand(id string, bestand decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE waren SET bestand = $2, updated_at = now() WHERE id = $1`,
		id, bestand,
	)
	if err != nil {
		return fmt.Errorf("update bestand: %w", err)
	}
	return nil
}

// List liefert Waren mit optionaler Suche (bereits gefalteter Suchbegriff) und Paginierung.
func (r *WareRepo) List(search string, limit, offset int) ([]*entity.Ware, error) {
	query := `
		SELECT ` + wareColumns + `
		FROM waren
		WHERE ($1 = '' OR name_suche LIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list waren: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ware
	for rows.Next() {
		var w entity.Ware
		if err := rows.Scan(&w.ID, &w.Name, &w.Beschreibung, &w.Bestand, &w.Mindestbestand,
			&w.Verkaufspreis, &w.Einheit, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ware: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete entfernt eine Ware.
func (r *WareRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM waren WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ware: %w", err)
	}
	return nil
}

func (r *WareRepo) scanOne(row pgx.Row, op string) (*entity.Ware, error) {
	var w entity.Ware
	err := row.Scan(&w.ID, &w.Name, &w.Beschreibung, &w.Bestand, &w.Mindestbestand,
		&w.Verkaufspreis, &w.Einheit, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}
