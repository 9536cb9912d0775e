package usecase

import (
	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// WarenLogUseCase Leseoperationen über das Warenlog.
type WarenLogUseCase struct {
	repo repository.WarenLogRepository
}

// NewWarenLogUseCase baut den Use-Case.
func NewWarenLogUseCase(repo repository.WarenLogRepository) *WarenLogUseCase {
	return &WarenLogUseCase{repo: repo}
}

// List liefert Logeinträge, optional gefiltert nach Ware, absteigend nach Datum.
func (uc *WarenLogUseCase) List(wareID string, limit, offset int) (*dto.WarenLogListResponse, error) {
	list, err := uc.repo.List(wareID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarenLogResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toWarenLogResponse(e))
	}
	return &dto.WarenLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWarenLogResponse(e *entity.WarenLog) *dto.WarenLogResponse {
	if e == nil {
		return nil
	}
	return &dto.WarenLogResponse{
		ID:           e.ID,
		WareID:       e.WareID,
		WareName:     e.WareName,
		BenutzerID:   e.BenutzerID,
		BenutzerName: e.BenutzerName,
		Aktion:       e.Aktion,
		Menge:        e.Menge,
		Notiz:        e.Notiz,
		Datum:        e.Datum,
	}
}
