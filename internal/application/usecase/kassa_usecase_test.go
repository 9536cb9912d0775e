package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
)

type fakeKassaRepo struct {
	kassen map[string]*entity.Kassa
}

func newFakeKassaRepo() *fakeKassaRepo {
	return &fakeKassaRepo{kassen: map[string]*entity.Kassa{}}
}

func (r *fakeKassaRepo) Create(k *entity.Kassa) error { r.kassen[k.ID] = k; return nil }
func (r *fakeKassaRepo) GetByID(id string) (*entity.Kassa, error) {
	k, ok := r.kassen[id]
	if !ok {
		return nil, nil
	}
	return k, nil
}
func (r *fakeKassaRepo) FindByAPIKey(apiKey string) ([]*entity.Kassa, error) {
	var out []*entity.Kassa
	for _, k := range r.kassen {
		if k.APIKey == apiKey {
			out = append(out, k)
		}
	}
	return out, nil
}
func (r *fakeKassaRepo) List(int, int) ([]*entity.Kassa, error) {
	out := make([]*entity.Kassa, 0, len(r.kassen))
	for _, k := range r.kassen {
		out = append(out, k)
	}
	return out, nil
}
func (r *fakeKassaRepo) UpdateSync(id, status string, at time.Time) error { return nil }
func (r *fakeKassaRepo) UpdateAPIKey(id, apiKey string) error {
	if k, ok := r.kassen[id]; ok {
		k.APIKey = apiKey
	}
	return nil
}
func (r *fakeKassaRepo) Delete(id string) error { delete(r.kassen, id); return nil }

func TestKassaCreate_KeyNurBeimAnlegen(t *testing.T) {
	repo := newFakeKassaRepo()
	uc := usecase.NewKassaUseCase(repo)

	created, err := uc.Create(dto.CreateKassaRequest{Name: "Hauptkassa", KassaNummer: "K-01"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.APIKey, "kassa_"), "Key-Präfix")
	assert.Equal(t, entity.KassaStatusGetrennt, created.Status)

	// Spätere Abfragen geben den Key nicht mehr heraus.
	fetched, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.APIKey)

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Empty(t, list.Items[0].APIKey)
}

func TestKassaCreate_Validierung(t *testing.T) {
	uc := usecase.NewKassaUseCase(newFakeKassaRepo())

	_, err := uc.Create(dto.CreateKassaRequest{Name: "", KassaNummer: "K-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateKassaRequest{Name: "Hauptkassa", KassaNummer: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKassaRotateKey(t *testing.T) {
	repo := newFakeKassaRepo()
	uc := usecase.NewKassaUseCase(repo)

	created, err := uc.Create(dto.CreateKassaRequest{Name: "Hauptkassa", KassaNummer: "K-01"})
	require.NoError(t, err)
	alterKey := created.APIKey

	rotated, err := uc.RotateKey(created.ID)
	require.NoError(t, err)

	assert.NotEqual(t, alterKey, rotated.APIKey)
	assert.True(t, strings.HasPrefix(rotated.APIKey, "kassa_"))

	// Der alte Key findet kein Terminal mehr.
	kassen, err := repo.FindByAPIKey(alterKey)
	require.NoError(t, err)
	assert.Empty(t, kassen)
}

func TestKassaRotateKey_NichtGefunden(t *testing.T) {
	uc := usecase.NewKassaUseCase(newFakeKassaRepo())

	resp, err := uc.RotateKey("gibt-es-nicht")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
