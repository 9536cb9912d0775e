package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kontorwerk/kassa-api/internal/application/kassa"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

var _ kassa.TxRunner = (*TxRunner)(nil)

// TxRunner führt Callbacks innerhalb einer PostgreSQL-Transaktion aus.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner baut den Runner mit dem Pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run startet eine Transaktion, übergibt transaktionsgebundene Repositories an fn
// und macht Commit bzw. Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	wareRepo repository.WareRepository,
	saleRepo repository.KassaSaleRepository,
	kassaRepo repository.KassaRepository,
	logRepo repository.WarenLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	wareRepo := NewWareRepository(tx)
	saleRepo := NewKassaSaleRepository(tx)
	kassaRepo := NewKassaRepository(tx)
	logRepo := NewWarenLogRepository(tx)

	if err := fn(wareRepo, saleRepo, kassaRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
