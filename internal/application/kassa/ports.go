package kassa

import (
	"context"

	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// TxRunner führt eine Funktion innerhalb einer DB-Transaktion aus und übergibt
// Repositories, die an diese Transaktion gebunden sind. Bestandsänderung,
// Verkaufsdatensatz, Kassen-Sync und Warenlog werden damit atomar: schlägt ein
// Schritt fehl, wird alles zurückgerollt.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		wareRepo repository.WareRepository,
		saleRepo repository.KassaSaleRepository,
		kassaRepo repository.KassaRepository,
		logRepo repository.WarenLogRepository,
	) error) error
}
