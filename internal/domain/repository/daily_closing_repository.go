package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// DailyClosingRepository persistencia de cierres diarios (uno por fecha).
type DailyClosingRepository interface {
	// GetByDate devuelve el cierre del día o nil si no existe.
	GetByDate(ctx context.Context, day time.Time) (*entity.DailyClosing, error)
	// LatestBefore devuelve el último cierre anterior a day o nil si no hay ninguno.
	LatestBefore(ctx context.Context, day time.Time) (*entity.DailyClosing, error)
	// Create inserta un cierre nuevo; si ya existe uno para la fecha devuelve ErrConflict.
	Create(ctx context.Context, dc *entity.DailyClosing) error
	// Update reescribe los montos solo si el cierre no está bloqueado; si lo está devuelve ErrLockedRecord.
	Update(ctx context.Context, dc *entity.DailyClosing) error
	// Lock bloquea el cierre del día. ErrNotFound si no existe, ErrLockedRecord si ya estaba bloqueado.
	Lock(ctx context.Context, day time.Time, at time.Time) error
}
