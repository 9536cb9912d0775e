package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// KassaUseCase verwaltet Kassenterminals. Der API-Key wird serverseitig erzeugt
// und nur beim Anlegen bzw. beim Schlüsselwechsel zurückgegeben.
type KassaUseCase struct {
	repo repository.KassaRepository
}

// NewKassaUseCase baut den Use-Case.
func NewKassaUseCase(repo repository.KassaRepository) *KassaUseCase {
	return &KassaUseCase{repo: repo}
}

// neuerAPIKey erzeugt einen neuen Terminal-Schlüssel.
func neuerAPIKey() string {
	return "kassa_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Create legt ein neues Terminal mit frischem API-Key an.
func (uc *KassaUseCase) Create(in dto.CreateKassaRequest) (*dto.KassaResponse, error) {
	if in.Name == "" || in.KassaNummer == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	kassa := &entity.Kassa{
		ID:          uuid.New().String(),
		Name:        in.Name,
		KassaNummer: in.KassaNummer,
		APIKey:      neuerAPIKey(),
		Status:      entity.KassaStatusGetrennt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(kassa); err != nil {
		return nil, err
	}
	return toKassaResponse(kassa, true), nil
}

// GetByID liefert ein Terminal ohne API-Key oder nil.
func (uc *KassaUseCase) GetByID(id string) (*dto.KassaResponse, error) {
	kassa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kassa == nil {
		return nil, nil
	}
	return toKassaResponse(kassa, false), nil
}

// List liefert Terminals ohne API-Keys.
func (uc *KassaUseCase) List(limit, offset int) (*dto.KassaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KassaResponse, 0, len(list))
	for _, k := range list {
		items = append(items, *toKassaResponse(k, false))
	}
	return &dto.KassaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RotateKey ersetzt den API-Key eines Terminals. Der alte Key ist sofort ungültig.
func (uc *KassaUseCase) RotateKey(id string) (*dto.KassaResponse, error) {
	kassa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kassa == nil {
		return nil, nil
	}
	kassa.APIKey = neuerAPIKey()
	kassa.UpdatedAt = time.Now()
	if err := uc.repo.UpdateAPIKey(kassa.ID, kassa.APIKey); err != nil {
		return nil, err
	}
	return toKassaResponse(kassa, true), nil
}

// Delete entfernt ein Terminal. Verkäufe bleiben über den denormalisierten Namen lesbar.
func (uc *KassaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toKassaResponse(k *entity.Kassa, mitKey bool) *dto.KassaResponse {
	if k == nil {
		return nil
	}
	resp := &dto.KassaResponse{
		ID:          k.ID,
		Name:        k.Name,
		KassaNummer: k.KassaNummer,
		Status:      k.Status,
		LetzteSync:  k.LetzteSync,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
	if mitKey {
		resp.APIKey = k.APIKey
	}
	return resp
}
