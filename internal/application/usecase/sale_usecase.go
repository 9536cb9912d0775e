package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// TagesberichtPDFGenerator rendert einen Tagesbericht als PDF.
type TagesberichtPDFGenerator interface {
	GenerateTagesbericht(ctx context.Context, bericht *dto.TagesberichtResponse) ([]byte, error)
}

// SaleUseCase Leseoperationen über Kassenverkäufe: Liste mit Filtern und
// Tagesbericht (Z-Bericht) als Aggregat oder PDF.
type SaleUseCase struct {
	repo repository.KassaSaleRepository
	pdf  TagesberichtPDFGenerator
}

// NewSaleUseCase baut den Use-Case.
func NewSaleUseCase(repo repository.KassaSaleRepository, pdf TagesberichtPDFGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, pdf: pdf}
}

// List liefert Verkäufe mit optionalen Filtern (Kassa, Ware, Zeitraum).
func (uc *SaleUseCase) List(filter repository.SaleFilter, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Tagesbericht aggregiert alle Verkäufe eines Kalendertags (Format YYYY-MM-DD)
// je Ware und sortiert absteigend nach Umsatz.
func (uc *SaleUseCase) Tagesbericht(datum string) (*dto.TagesberichtResponse, error) {
	day, err := time.Parse("2006-01-02", datum)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.repo.ListByDay(day)
	if err != nil {
		return nil, err
	}

	bericht := &dto.TagesberichtResponse{
		Datum:       datum,
		Verkaeufe:   len(sales),
		Gesamtmenge: decimal.Zero,
		Umsatz:      decimal.Zero,
		Positionen:  []dto.TagesberichtPosition{},
	}

	byWare := map[string]*dto.TagesberichtPosition{}
	for _, s := range sales {
		bericht.Gesamtmenge = bericht.Gesamtmenge.Add(s.Menge)
		bericht.Umsatz = bericht.Umsatz.Add(s.Summe)
		pos, ok := byWare[s.WareID]
		if !ok {
			pos = &dto.TagesberichtPosition{WareID: s.WareID, WareName: s.WareName}
			byWare[s.WareID] = pos
		}
		pos.Menge = pos.Menge.Add(s.Menge)
		pos.Umsatz = pos.Umsatz.Add(s.Summe)
	}
	for _, pos := range byWare {
		bericht.Positionen = append(bericht.Positionen, *pos)
	}
	sort.Slice(bericht.Positionen, func(i, j int) bool {
		return bericht.Positionen[i].Umsatz.GreaterThan(bericht.Positionen[j].Umsatz)
	})

	return bericht, nil
}

// TagesberichtPDF liefert den Tagesbericht als gerendertes PDF.
func (uc *SaleUseCase) TagesberichtPDF(ctx context.Context, datum string) ([]byte, error) {
	bericht, err := uc.Tagesbericht(datum)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateTagesbericht(ctx, bericht)
}

func toSaleResponse(s *entity.KassaSale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:               s.ID,
		KassaID:          s.KassaID,
		KassaName:        s.KassaName,
		WareID:           s.WareID,
		WareName:         s.WareName,
		Menge:            s.Menge,
		Summe:            s.Summe,
		Datum:            s.Datum,
		Status:           s.Status,
		BestandReduziert: s.BestandReduziert,
		Nachbestellung:   s.Nachbestellung,
	}
}
