package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ledger-api/internal/application/finance"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ finance.ClosingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewTxRunner construye el runner con el pool. loc es la zona de las columnas DATE.
func NewTxRunner(pool *pgxpool.Pool, loc *time.Location) *TxRunner {
	if loc == nil {
		loc = time.UTC
	}
	return &TxRunner{pool: pool, loc: loc}
}

// RunClosing inicia una transacción, ejecuta fn con el repositorio de cierres atado a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunClosing(ctx context.Context, fn func(closings repository.DailyClosingRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDailyClosingRepository(tx, r.loc)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
