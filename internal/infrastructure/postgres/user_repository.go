package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo Implementierung des UserRepository-Ports auf PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository baut den Persistenz-Adapter. Pool oder Tx übergeben (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persistiert einen neuen Benutzer.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO benutzer (id, email, password_hash, name, rolle, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert benutzer: %w", err)
	}
	return nil
}

// GetByID liefert einen Benutzer oder nil.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT id, email, password_hash, name, rolle, status, created_at, updated_at FROM benutzer WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get benutzer")
}

// FindByEmail liefert einen Benutzer anhand der E-Mail oder nil.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT id, email, password_hash, name, rolle, status, created_at, updated_at FROM benutzer WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "find benutzer by email")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
