package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.DailyClosingRepository = (*DailyClosingRepo)(nil)

// DailyClosingRepo implementación de DailyClosingRepository (usable con pool o tx).
type DailyClosingRepo struct {
	q   Querier
	loc *time.Location
}

// NewDailyClosingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyClosingRepository(q Querier, loc *time.Location) *DailyClosingRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &DailyClosingRepo{q: q, loc: loc}
}

const closingColumns = `
	id, date, opening_cash, total_credit, total_debit, expected_closing,
	actual_closing, difference, is_locked, notes, counted_by, created_by, created_at, updated_at`

// GetByDate obtiene el cierre del día; nil si no existe.
func (r *DailyClosingRepo) GetByDate(ctx context.Context, day time.Time) (*entity.DailyClosing, error) {
	row := r.q.QueryRow(ctx, `SELECT `+closingColumns+` FROM daily_closings WHERE date = $1::date`, dateParam(&day))
	dc, err := scanClosing(row, r.loc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily closing: %w", err)
	}
	return dc, nil
}

// LatestBefore obtiene el último cierre anterior a day; nil si no hay.
func (r *DailyClosingRepo) LatestBefore(ctx context.Context, day time.Time) (*entity.DailyClosing, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+closingColumns+` FROM daily_closings
		WHERE date < $1::date
		ORDER BY date DESC LIMIT 1`, dateParam(&day))
	dc, err := scanClosing(row, r.loc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest daily closing: %w", err)
	}
	return dc, nil
}

// Create persiste un cierre nuevo. Hay un índice único por fecha.
func (r *DailyClosingRepo) Create(ctx context.Context, dc *entity.DailyClosing) error {
	query := `
		INSERT INTO daily_closings (` + closingColumns + `)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		dc.ID, dateParam(&dc.Date), dc.OpeningCash, dc.TotalCredit, dc.TotalDebit, dc.ExpectedClosing,
		dc.ActualClosing, dc.Difference, dc.IsLocked, dc.Notes, nullIfEmpty(dc.CountedBy), dc.CreatedBy,
		dc.CreatedAt, dc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("daily closing %s: %w", dc.Date.Format("2006-01-02"), domain.ErrConflict)
		}
		return fmt.Errorf("insert daily closing: %w", err)
	}
	return nil
}

// Update reescribe los montos. El WHERE is_locked = false hace que un cierre bloqueado
// no se pueda modificar aunque dos peticiones compitan.
func (r *DailyClosingRepo) Update(ctx context.Context, dc *entity.DailyClosing) error {
	query := `
		UPDATE daily_closings
		SET opening_cash     = $2,
		    total_credit     = $3,
		    total_debit      = $4,
		    expected_closing = $5,
		    actual_closing   = $6,
		    difference       = $7,
		    notes            = $8,
		    counted_by       = $9,
		    updated_at       = $10
		WHERE id = $1 AND is_locked = false`
	tag, err := r.q.Exec(ctx, query,
		dc.ID, dc.OpeningCash, dc.TotalCredit, dc.TotalDebit, dc.ExpectedClosing,
		dc.ActualClosing, dc.Difference, dc.Notes, nullIfEmpty(dc.CountedBy), dc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update daily closing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrLocked(ctx, dc.Date)
	}
	return nil
}

// Lock pasa is_locked a true. Nunca vuelve a false.
func (r *DailyClosingRepo) Lock(ctx context.Context, day time.Time, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE daily_closings SET is_locked = true, updated_at = $2
		WHERE date = $1::date AND is_locked = false`, dateParam(&day), at)
	if err != nil {
		return fmt.Errorf("lock daily closing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrLocked(ctx, day)
	}
	return nil
}

// missingOrLocked distingue por qué un UPDATE no tocó filas.
func (r *DailyClosingRepo) missingOrLocked(ctx context.Context, day time.Time) error {
	dc, err := r.GetByDate(ctx, day)
	if err != nil {
		return err
	}
	if dc == nil {
		return domain.ErrNotFound
	}
	return domain.ErrLockedRecord
}

// listClosings cierres en el rango (para el resumen financiero).
func listClosings(ctx context.Context, q Querier, loc *time.Location, from, to *string) ([]entity.DailyClosing, error) {
	rows, err := q.Query(ctx, `
		SELECT `+closingColumns+` FROM daily_closings
		WHERE ($1::date IS NULL OR date >= $1::date)
		  AND ($2::date IS NULL OR date <= $2::date)
		ORDER BY date`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list daily closings: %w", err)
	}
	defer rows.Close()

	var list []entity.DailyClosing
	for rows.Next() {
		dc, err := scanClosing(rows, loc)
		if err != nil {
			return nil, fmt.Errorf("scan daily closing: %w", err)
		}
		list = append(list, *dc)
	}
	return list, rows.Err()
}

func scanClosing(row pgx.Row, loc *time.Location) (*entity.DailyClosing, error) {
	var (
		dc               entity.DailyClosing
		notes, countedBy *string
	)
	err := row.Scan(
		&dc.ID, &dc.Date, &dc.OpeningCash, &dc.TotalCredit, &dc.TotalDebit, &dc.ExpectedClosing,
		&dc.ActualClosing, &dc.Difference, &dc.IsLocked, &notes, &countedBy, &dc.CreatedBy,
		&dc.CreatedAt, &dc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	dc.Date = asDate(dc.Date, loc)
	dc.Notes = derefStr(notes)
	dc.CountedBy = derefStr(countedBy)
	return &dc, nil
}
