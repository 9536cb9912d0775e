package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
)

type fakeWareRepo struct {
	waren      map[string]*entity.Ware
	lastSearch string
}

func newFakeWareRepo() *fakeWareRepo {
	return &fakeWareRepo{waren: map[string]*entity.Ware{}}
}

func (r *fakeWareRepo) Create(w *entity.Ware) error { r.waren[w.ID] = w; return nil }
func (r *fakeWareRepo) GetByID(id string) (*entity.Ware, error) {
	w, ok := r.waren[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}
func (r *fakeWareRepo) GetForUpdate(id string) (*entity.Ware, error) { return r.GetByID(id) }
func (r *fakeWareRepo) Update(w *entity.Ware) error                  { r.waren[w.ID] = w; return nil }
func (r *fakeWareRepo) UpdateBestand(id string, bestand decimal.Decimal) error {
	if w, ok := r.waren[id]; ok {
		w.Bestand = bestand
	}
	return nil
}
func (r *fakeWareRepo) List(search string, limit, offset int) ([]*entity.Ware, error) {
	r.lastSearch = search
	out := make([]*entity.Ware, 0, len(r.waren))
	for _, w := range r.waren {
		out = append(out, w)
	}
	return out, nil
}
func (r *fakeWareRepo) Delete(id string) error { delete(r.waren, id); return nil }

func neueWare() dto.CreateWareRequest {
	return dto.CreateWareRequest{
		Name:           "Müsliriegel",
		Bestand:        decimal.NewFromInt(10),
		Mindestbestand: decimal.NewFromInt(3),
		Verkaufspreis:  decimal.RequireFromString("2.50"),
	}
}

func TestWareCreate(t *testing.T) {
	repo := newFakeWareRepo()
	uc := usecase.NewWareUseCase(repo)

	resp, err := uc.Create(neueWare())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Müsliriegel", resp.Name)
	assert.Equal(t, "Stück", resp.Einheit, "Default-Einheit")
	assert.False(t, resp.Nachbestellung, "10 >= 3")
	assert.Len(t, repo.waren, 1)
}

func TestWareCreate_Validierung(t *testing.T) {
	uc := usecase.NewWareUseCase(newFakeWareRepo())

	ohneName := neueWare()
	ohneName.Name = ""
	_, err := uc.Create(ohneName)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativ := neueWare()
	negativ.Bestand = decimal.NewFromInt(-1)
	_, err = uc.Create(negativ)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativerPreis := neueWare()
	negativerPreis.Verkaufspreis = decimal.RequireFromString("-0.01")
	_, err = uc.Create(negativerPreis)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update darf den Bestand nie anfassen: der läuft ausschließlich über den
// Kassen-Webhook bzw. Korrekturen.
func TestWareUpdate_BestandBleibt(t *testing.T) {
	repo := newFakeWareRepo()
	uc := usecase.NewWareUseCase(repo)

	created, err := uc.Create(neueWare())
	require.NoError(t, err)

	neuerName := "Haferriegel"
	neuerPreis := decimal.RequireFromString("2.99")
	resp, err := uc.Update(created.ID, dto.UpdateWareRequest{
		Name:          &neuerName,
		Verkaufspreis: &neuerPreis,
	})
	require.NoError(t, err)

	assert.Equal(t, "Haferriegel", resp.Name)
	assert.True(t, resp.Verkaufspreis.Equal(neuerPreis))
	assert.True(t, resp.Bestand.Equal(decimal.NewFromInt(10)), "Bestand unverändert")
}

func TestWareUpdate_NichtGefunden(t *testing.T) {
	uc := usecase.NewWareUseCase(newFakeWareRepo())

	name := "x"
	resp, err := uc.Update("gibt-es-nicht", dto.UpdateWareRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestWareUpdate_LeererNameUngueltig(t *testing.T) {
	repo := newFakeWareRepo()
	uc := usecase.NewWareUseCase(repo)

	created, err := uc.Create(neueWare())
	require.NoError(t, err)

	leer := ""
	_, err = uc.Update(created.ID, dto.UpdateWareRequest{Name: &leer})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Der Suchbegriff wird vor der Repo-Abfrage gefaltet, damit er gegen die
// ebenfalls gefaltete Suchspalte passt.
func TestWareList_SucheWirdGefaltet(t *testing.T) {
	repo := newFakeWareRepo()
	uc := usecase.NewWareUseCase(repo)

	_, err := uc.List("MÜSLI", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "musli", repo.lastSearch)
}
