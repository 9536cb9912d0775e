package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
	"github.com/kontorwerk/kassa-api/pkg/textfold"
)

// WareUseCase CRUD für Waren. Bestandsänderungen laufen über den Kassen-Webhook
// und werden hier bewusst nicht angeboten.
type WareUseCase struct {
	repo repository.WareRepository
}

// NewWareUseCase baut den Use-Case.
func NewWareUseCase(repo repository.WareRepository) *WareUseCase {
	return &WareUseCase{repo: repo}
}

// Create legt eine neue Ware an.
func (uc *WareUseCase) Create(in dto.CreateWareRequest) (*dto.WareResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Bestand.IsNegative() || in.Mindestbestand.IsNegative() || in.Verkaufspreis.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Einheit == "" {
		in.Einheit = "Stück"
	}
	now := time.Now()
	ware := &entity.Ware{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Beschreibung:   in.Beschreibung,
		Bestand:        in.Bestand,
		Mindestbestand: in.Mindestbestand,
		Verkaufspreis:  in.Verkaufspreis,
		Einheit:        in.Einheit,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ware); err != nil {
		return nil, err
	}
	return toWareResponse(ware), nil
}

// GetByID liefert eine Ware oder nil, wenn sie nicht existiert.
func (uc *WareUseCase) GetByID(id string) (*dto.WareResponse, error) {
	ware, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ware == nil {
		return nil, nil
	}
	return toWareResponse(ware), nil
}

// Update aktualisiert Stammdaten einer Ware. Bestand bleibt unangetastet.
func (uc *WareUseCase) Update(id string, in dto.UpdateWareRequest) (*dto.WareResponse, error) {
	ware, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ware == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		ware.Name = *in.Name
	}
	if in.Beschreibung != nil {
		ware.Beschreibung = *in.Beschreibung
	}
	if in.Mindestbestand != nil {
		if in.Mindestbestand.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ware.Mindestbestand = *in.Mindestbestand
	}
	if in.Verkaufspreis != nil {
		if in.Verkaufspreis.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ware.Verkaufspreis = *in.Verkaufspreis
	}
	if in.Einheit != nil {
		ware.Einheit = *in.Einheit
	}
	ware.UpdatedAt = time.Now()
	if err := uc.repo.Update(ware); err != nil {
		return nil, err
	}
	return toWareResponse(ware), nil
}

// List liefert Waren mit optionaler Suche (umlaut-unempfindlich) und Paginierung.
func (uc *WareUseCase) List(search string, limit, offset int) (*dto.WareListResponse, error) {
	list, err := uc.repo.List(textfold.Fold(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WareResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWareResponse(w))
	}
	return &dto.WareListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete entfernt eine Ware. Vorhandene Verkäufe und Logeinträge bleiben
// durch die denormalisierten Namen lesbar.
func (uc *WareUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWareResponse(w *entity.Ware) *dto.WareResponse {
	if w == nil {
		return nil
	}
	return &dto.WareResponse{
		ID:             w.ID,
		Name:           w.Name,
		Beschreibung:   w.Beschreibung,
		Bestand:        w.Bestand,
		Mindestbestand: w.Mindestbestand,
		Verkaufspreis:  w.Verkaufspreis,
		Einheit:        w.Einheit,
		Nachbestellung: w.NachbestellungNoetig(),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
