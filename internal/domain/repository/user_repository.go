package repository

import "github.com/kontorwerk/kassa-api/internal/domain/entity"

// UserRepository definiert den Persistenz-Port für Benutzer der Verwaltungs-API.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
