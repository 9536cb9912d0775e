package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontorwerk/kassa-api/internal/application/auth"
	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // key: E-Mail
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newTestAuth() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "kassa-api",
	})
	return uc, repo
}

func TestRegisterUser(t *testing.T) {
	uc, repo := newTestAuth()

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "lager@kontorwerk.de",
		Password: "geheim123",
		Name:     "Lagerist",
		Role:     entity.RoleLager,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.RoleLager, resp.Role)
	assert.Equal(t, "active", resp.Status)

	// Passwort darf nie im Klartext gespeichert werden.
	stored := repo.users["lager@kontorwerk.de"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "geheim123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_DefaultRolle(t *testing.T) {
	uc, _ := newTestAuth()

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "neu@kontorwerk.de",
		Password: "geheim123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVerkauf, resp.Role)
	assert.Equal(t, "neu@kontorwerk.de", resp.Name, "Name fällt auf die E-Mail zurück")
}

func TestRegisterUser_EmailVergeben(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.de", Password: "pw123456"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.de", Password: "anderes"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@kontorwerk.de",
		Password: "geheim123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@kontorwerk.de", Password: "geheim123"})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Token)
	userID, role, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_FalschesPasswort(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.de", Password: "richtig123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.de", Password: "falsch"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnbekannteEmail(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.Login(dto.LoginRequest{Email: "niemand@b.de", Password: "egal"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InaktiverBenutzer(t *testing.T) {
	uc, repo := newTestAuth()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.de", Password: "geheim123"})
	require.NoError(t, err)
	repo.users["a@b.de"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.de", Password: "geheim123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
