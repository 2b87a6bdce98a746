package finance

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// ClosingTxRunner ejecuta fn dentro de una transacción con el repositorio de cierres atado a ella.
// Si fn retorna error no queda nada escrito.
type ClosingTxRunner interface {
	RunClosing(ctx context.Context, fn func(closings repository.DailyClosingRepository) error) error
}
