// Package finance contiene los casos de uso del cierre de caja diario.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/application/validation"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/access"
	"github.com/jhoicas/ledger-api/internal/domain/closing"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/money"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// ClosingUseCase concilia, consulta y bloquea cierres diarios.
type ClosingUseCase struct {
	closings repository.DailyClosingRepository
	tx       ClosingTxRunner
	ledger   repository.LedgerReader
	validate *validation.Validator
	loc      *time.Location
	now      func() time.Time
	newID    func() string
	log      *logger.Logger
}

// Option personaliza el caso de uso (tests).
type Option func(*ClosingUseCase)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *ClosingUseCase) { uc.now = now }
}

// WithIDGenerator reemplaza uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(uc *ClosingUseCase) { uc.newID = newID }
}

// NewClosingUseCase construye el caso de uso. loc es la zona del negocio (fechas de cierre).
// closings atiende lecturas y el bloqueo suelto; las escrituras de Reconcile pasan por tx.
func NewClosingUseCase(
	closings repository.DailyClosingRepository,
	tx ClosingTxRunner,
	ledger repository.LedgerReader,
	validate *validation.Validator,
	loc *time.Location,
	log *logger.Logger,
	opts ...Option,
) *ClosingUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	if validate == nil {
		validate = validation.New()
	}
	uc := &ClosingUseCase{
		closings: closings,
		tx:       tx,
		ledger:   ledger,
		validate: validate,
		loc:      loc,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      log.Component("finance"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Reconcile crea o recalcula el cierre de req.Date.
//
// Sin opening_cash se toma el efectivo contado del cierre anterior (cero si no hay);
// sin total_credit/total_debit se suman las transacciones de caja del día.
// Un cierre bloqueado no se toca: devuelve ErrLockedRecord.
func (uc *ClosingUseCase) Reconcile(ctx context.Context, p *access.Principal, req dto.ReconcileRequest) (*dto.ClosingResponse, error) {
	if !access.Authorize(p, access.CanReconcileClosing) {
		return nil, fmt.Errorf("closing: conciliar: %w", domain.ErrPermissionDenied)
	}
	if req.Finalize && !access.Authorize(p, access.CanLockClosing) {
		return nil, fmt.Errorf("closing: bloquear: %w", domain.ErrPermissionDenied)
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, err
	}

	day, err := uc.parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	// Lectura, cálculo, escritura y bloqueo en una sola transacción: con finalize el cierre
	// queda guardado y bloqueado, o no queda nada.
	var (
		dc  *entity.DailyClosing
		res closing.Result
	)
	err = uc.tx.RunClosing(ctx, func(closings repository.DailyClosingRepository) error {
		existing, err := closings.GetByDate(ctx, day)
		if err != nil {
			return fmt.Errorf("closing %s: %w", req.Date, err)
		}
		if existing != nil && existing.IsLocked {
			return fmt.Errorf("closing %s: %w", req.Date, domain.ErrLockedRecord)
		}

		in, err := uc.buildInput(ctx, closings, day, req)
		if err != nil {
			return err
		}

		now := uc.now()
		dc = existing
		if dc == nil {
			dc = &entity.DailyClosing{ID: uc.newID(), Date: day, CreatedBy: p.UserID(), CreatedAt: now}
		}
		if res, err = closing.Apply(dc, in, now); err != nil {
			return err
		}

		if existing == nil {
			err = closings.Create(ctx, dc)
		} else {
			err = closings.Update(ctx, dc)
		}
		if err != nil {
			return fmt.Errorf("closing %s: guardar: %w", req.Date, err)
		}

		if req.Finalize {
			if err := closings.Lock(ctx, day, now); err != nil {
				return fmt.Errorf("closing %s: bloquear: %w", req.Date, err)
			}
			return closing.Lock(dc, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("user_id", p.UserID()).
		Str("date", req.Date).
		Str("expected", money.String(res.Expected)).
		Str("difference", money.String(res.Difference)).
		Str("variance", string(res.Variance)).
		Bool("locked", dc.IsLocked).
		Msg("cierre conciliado")

	out := dto.NewClosingResponse(dc)
	return &out, nil
}

// Lock bloquea el cierre del día. Es irreversible.
func (uc *ClosingUseCase) Lock(ctx context.Context, p *access.Principal, date string) (*dto.ClosingResponse, error) {
	if !access.Authorize(p, access.CanLockClosing) {
		return nil, fmt.Errorf("closing: bloquear: %w", domain.ErrPermissionDenied)
	}
	day, err := uc.parseDay(date)
	if err != nil {
		return nil, err
	}
	if err := uc.closings.Lock(ctx, day, uc.now()); err != nil {
		return nil, fmt.Errorf("closing %s: %w", date, err)
	}

	dc, err := uc.closings.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("closing %s: %w", date, err)
	}
	if dc == nil {
		return nil, fmt.Errorf("closing %s: %w", date, domain.ErrNotFound)
	}
	uc.log.Info().Str("user_id", p.UserID()).Str("date", date).Msg("cierre bloqueado")

	out := dto.NewClosingResponse(dc)
	return &out, nil
}

// Get devuelve el cierre del día con su clasificación.
func (uc *ClosingUseCase) Get(ctx context.Context, p *access.Principal, date string) (*dto.ClosingResponse, error) {
	if !access.Authorize(p, access.CanViewClosing) {
		return nil, fmt.Errorf("closing: ver: %w", domain.ErrPermissionDenied)
	}
	day, err := uc.parseDay(date)
	if err != nil {
		return nil, err
	}
	dc, err := uc.closings.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("closing %s: %w", date, err)
	}
	if dc == nil {
		return nil, fmt.Errorf("closing %s: %w", date, domain.ErrNotFound)
	}
	if err := closing.Verify(dc); err != nil {
		// registro alterado fuera de la API; se devuelve tal cual
		uc.log.Error().Err(err).Str("date", date).Msg("cierre inconsistente")
	}

	out := dto.NewClosingResponse(dc)
	return &out, nil
}

func (uc *ClosingUseCase) parseDay(s string) (time.Time, error) {
	day, err := daterange.ParseDate(s, uc.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q no es AAAA-MM-DD", domain.ErrInvalidInput, s)
	}
	return day, nil
}

func (uc *ClosingUseCase) buildInput(
	ctx context.Context,
	closings repository.DailyClosingRepository,
	day time.Time,
	req dto.ReconcileRequest,
) (closing.Input, error) {
	in := closing.Input{Notes: req.Notes, CountedBy: req.CountedBy}

	var err error
	if in.ActualClosing, err = money.Parse(req.ActualClosing); err != nil {
		return in, fmt.Errorf("%w: actual_closing: %v", domain.ErrInvalidInput, err)
	}

	// ── Efectivo inicial ──────────────────────────────────────────────────────
	if req.OpeningCash != nil {
		if in.OpeningCash, err = money.Parse(*req.OpeningCash); err != nil {
			return in, fmt.Errorf("%w: opening_cash: %v", domain.ErrInvalidInput, err)
		}
	} else {
		prev, err := closings.LatestBefore(ctx, day)
		if err != nil {
			return in, fmt.Errorf("closing: cierre anterior: %w", err)
		}
		in.OpeningCash = decimal.Zero
		if prev != nil {
			in.OpeningCash = prev.ActualClosing
		}
	}

	// ── Movimientos del día ───────────────────────────────────────────────────
	if req.TotalCredit == nil || req.TotalDebit == nil {
		txs, err := uc.ledger.TransactionsOn(ctx, day)
		if err != nil {
			return in, fmt.Errorf("closing: transacciones del día: %w", err)
		}
		totals := closing.Totals(txs, day)
		in.TotalCredit, in.TotalDebit = totals.Credit, totals.Debit
	}
	if req.TotalCredit != nil {
		if in.TotalCredit, err = money.Parse(*req.TotalCredit); err != nil {
			return in, fmt.Errorf("%w: total_credit: %v", domain.ErrInvalidInput, err)
		}
	}
	if req.TotalDebit != nil {
		if in.TotalDebit, err = money.Parse(*req.TotalDebit); err != nil {
			return in, fmt.Errorf("%w: total_debit: %v", domain.ErrInvalidInput, err)
		}
	}
	return in, nil
}
