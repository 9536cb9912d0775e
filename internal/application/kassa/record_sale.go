package kassa

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// RecordSaleUseCase verbucht ein Verkaufsereignis einer Kassa: authentifiziert
// das Terminal über den API-Key, reduziert den Bestand der Ware, legt den
// Verkaufsdatensatz an, aktualisiert die Kassen-Synchronisation und schreibt
// einen Warenlog-Eintrag. Die vier Schreibschritte laufen in einer Transaktion
// mit Zeilensperre auf der Ware.
type RecordSaleUseCase struct {
	txRunner  TxRunner
	kassaRepo repository.KassaRepository
}

// NewRecordSaleUseCase baut den Use-Case.
func NewRecordSaleUseCase(txRunner TxRunner, kassaRepo repository.KassaRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, kassaRepo: kassaRepo}
}

// RecordSaleInput Eingabe eines Verkaufsereignisses.
// Summe nil = aus Menge * Verkaufspreis der Ware berechnen.
// EventID leer = keine Idempotenz, Wiederholungen werden doppelt verbucht.
type RecordSaleInput struct {
	APIKey  string
	WareID  string
	Menge   decimal.Decimal
	Summe   *decimal.Decimal
	EventID string
}

// RecordSaleResult Ergebnis eines verbuchten (oder wiedererkannten) Verkaufs.
type RecordSaleResult struct {
	SaleID         string
	NeuerBestand   decimal.Decimal
	Nachbestellung bool
	Wiederholung   bool // true, wenn die EventID bereits verbucht war
}

// Execute führt den Verkauf aus.
//
// Die Authentifizierung läuft vor jeder Payload-Prüfung: ein unbekannter
// API-Key liefert immer ErrUnauthorized, egal wie der Payload aussieht.
//
// Fehler: ErrUnauthorized (unbekannter API-Key), ErrAmbiguousAPIKey (Key
// mehreren Kassen zugeordnet), ErrInvalidInput (WareID leer oder Menge <= 0),
// ErrNotFound (Ware existiert nicht).
//
// Der Bestand wird auf null geklemmt: neuer_bestand = max(0, bestand - menge).
// Ein Überverkauf ist damit kein Fehler, wird aber im Warenlog sichtbar.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleResult, error) {
	kassen, err := uc.kassaRepo.FindByAPIKey(input.APIKey)
	if err != nil {
		return nil, err
	}
	if len(kassen) == 0 {
		return nil, domain.ErrUnauthorized
	}
	if len(kassen) > 1 {
		return nil, domain.ErrAmbiguousAPIKey
	}
	kassa := kassen[0]

	if input.WareID == "" || !input.Menge.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var result *RecordSaleResult
	err = uc.txRunner.Run(ctx, func(
		wareRepo repository.WareRepository,
		saleRepo repository.KassaSaleRepository,
		kassaRepo repository.KassaRepository,
		logRepo repository.WarenLogRepository,
	) error {
		// Idempotenz: bereits verbuchte EventID liefert den vorhandenen Verkauf
		// zurück, ohne den Bestand ein zweites Mal zu verringern.
		if input.EventID != "" {
			existing, err := saleRepo.GetByEventID(input.EventID)
			if err != nil {
				return err
			}
			if existing != nil {
				ware, err := wareRepo.GetByID(existing.WareID)
				if err != nil {
					return err
				}
				bestand := decimal.Zero
				if ware != nil {
					bestand = ware.Bestand
				}
				result = &RecordSaleResult{
					SaleID:         existing.ID,
					NeuerBestand:   bestand,
					Nachbestellung: existing.Nachbestellung,
					Wiederholung:   true,
				}
				return nil
			}
		}

		// Zeilensperre auf der Ware: parallele Verkäufe derselben Ware
		// serialisieren sich hier, kein Lost Update.
		ware, err := wareRepo.GetForUpdate(input.WareID)
		if err != nil {
			return err
		}
		if ware == nil {
			return domain.ErrNotFound
		}

		alterBestand := ware.Bestand
		neuerBestand := decimal.Max(decimal.Zero, alterBestand.Sub(input.Menge))
		nachbestellung := neuerBestand.LessThan(ware.Mindestbestand)

		if err := wareRepo.UpdateBestand(ware.ID, neuerBestand); err != nil {
			return err
		}

		summe := input.Menge.Mul(ware.Verkaufspreis)
		if input.Summe != nil {
			summe = *input.Summe
		}

		now := time.Now()
		sale := &entity.KassaSale{
			ID:               uuid.New().String(),
			KassaID:          kassa.ID,
			KassaName:        kassa.Name,
			WareID:           ware.ID,
			WareName:         ware.Name,
			Menge:            input.Menge,
			Summe:            summe,
			Datum:            now,
			Status:           entity.SaleStatusVerarbeitet,
			BestandReduziert: true,
			Nachbestellung:   nachbestellung,
			EventID:          input.EventID,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		if err := kassaRepo.UpdateSync(kassa.ID, entity.KassaStatusVerbunden, now); err != nil {
			return err
		}

		logEntry := &entity.WarenLog{
			ID:           uuid.New().String(),
			WareID:       ware.ID,
			WareName:     ware.Name,
			BenutzerID:   entity.BenutzerSystemKassa,
			BenutzerName: "Kassa: " + kassa.Name,
			Aktion:       entity.AktionVerkauf,
			Menge:        input.Menge,
			Notiz:        verkaufsNotiz(kassa, ware, input.Menge, alterBestand, neuerBestand, nachbestellung),
			Datum:        now,
		}
		if err := logRepo.Create(logEntry); err != nil {
			return err
		}

		result = &RecordSaleResult{
			SaleID:         sale.ID,
			NeuerBestand:   neuerBestand,
			Nachbestellung: nachbestellung,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// verkaufsNotiz baut die menschenlesbare Warenlog-Notiz mit Bestand vorher/nachher.
func verkaufsNotiz(kassa *entity.Kassa, ware *entity.Ware, menge, alt, neu decimal.Decimal, nachbestellung bool) string {
	notiz := fmt.Sprintf(
		"Verkauf über Kassa %s (%s): %s %s von %s verkauft. Bestand: %s → %s",
		kassa.Name, kassa.KassaNummer, menge.String(), ware.Einheit, ware.Name,
		alt.String(), neu.String(),
	)
	if nachbestellung {
		notiz += " [NACHBESTELLUNG ERFORDERLICH]"
	}
	return notiz
}
