// Package pdf rendert den Tagesbericht (Z-Bericht) der Kassenverkäufe.
//
// Seitenaufbau (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Titel + Datum                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KENNZAHLEN: Anzahl Verkäufe / Gesamtmenge / Umsatz          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLE: Ware | Menge | Umsatz (absteigend nach Umsatz)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.TagesberichtPDFGenerator = (*MarotoBerichtGenerator)(nil)

// MarotoBerichtGenerator implementiert usecase.TagesberichtPDFGenerator mit Maroto v2.
type MarotoBerichtGenerator struct{}

// NewMarotoBerichtGenerator baut den Generator.
func NewMarotoBerichtGenerator() *MarotoBerichtGenerator { return &MarotoBerichtGenerator{} }

// GenerateTagesbericht rendert den Bericht und liefert die PDF-Bytes.
func (g *MarotoBerichtGenerator) GenerateTagesbericht(_ context.Context, bericht *dto.TagesberichtResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tagesbericht "+bericht.Datum, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bericht))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kennzahlenRow(bericht))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, pos := range bericht.Positionen {
		m.AddRows(positionRow(pos))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: dokument erzeugen: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: Titel links, Datum rechts.
func headerRow(bericht *dto.TagesberichtResponse) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Tagesbericht Kassenverkäufe", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(bericht.Datum, props.Text{
				Size: 11, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kennzahlenRow: Anzahl Verkäufe, Gesamtmenge, Umsatz.
func kennzahlenRow(bericht *dto.TagesberichtResponse) core.Row {
	return row.New(10).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Verkäufe: %d", bericht.Verkaeufe), props.Text{Size: 10, Top: 2}),
		),
		col.New(4).Add(
			text.New("Gesamtmenge: "+bericht.Gesamtmenge.String(), props.Text{Size: 10, Top: 2}),
		),
		col.New(4).Add(
			text.New("Umsatz: "+bericht.Umsatz.StringFixed(2)+" EUR", props.Text{
				Size: 10, Top: 2, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New("Ware", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New("Menge", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right})),
		col.New(3).Add(text.New("Umsatz (EUR)", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right})),
	)
}

func positionRow(pos dto.TagesberichtPosition) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(pos.WareName, props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(pos.Menge.String(), props.Text{Size: 9, Top: 1, Align: align.Right})),
		col.New(3).Add(text.New(pos.Umsatz.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
	)
}
