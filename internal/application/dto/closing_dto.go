package dto

import (
	"time"

	"github.com/jhoicas/ledger-api/internal/domain/closing"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/money"
)

// ReconcileRequest cuerpo de POST /api/closings.
// Los montos viajan como string con hasta 3 decimales. OpeningCash, TotalCredit y TotalDebit
// son opcionales: si faltan se toman del cierre anterior y de las transacciones de caja del día.
type ReconcileRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	OpeningCash   *string `json:"opening_cash,omitempty" validate:"omitempty,omr"`
	TotalCredit   *string `json:"total_credit,omitempty" validate:"omitempty,omr"`
	TotalDebit    *string `json:"total_debit,omitempty" validate:"omitempty,omr"`
	ActualClosing string  `json:"actual_closing" validate:"required,omr"`
	Notes         string  `json:"notes" validate:"max=500"`
	CountedBy     string  `json:"counted_by,omitempty" validate:"omitempty,worker_name"`
	Finalize      bool    `json:"finalize"`
}

// ClosingResponse cierre diario con su clasificación de diferencia.
type ClosingResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	OpeningCash     string    `json:"opening_cash"`
	TotalCredit     string    `json:"total_credit"`
	TotalDebit      string    `json:"total_debit"`
	ExpectedClosing string    `json:"expected_closing"`
	ActualClosing   string    `json:"actual_closing"`
	Difference      string    `json:"difference"`
	Variance        string    `json:"variance"`
	IsLocked        bool      `json:"is_locked"`
	Notes           string    `json:"notes"`
	CountedBy       string    `json:"counted_by,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewClosingResponse construye la respuesta a partir de la entidad.
func NewClosingResponse(dc *entity.DailyClosing) ClosingResponse {
	return ClosingResponse{
		ID:              dc.ID,
		Date:            dc.Date.Format(daterange.DateLayout),
		OpeningCash:     money.String(dc.OpeningCash),
		TotalCredit:     money.String(dc.TotalCredit),
		TotalDebit:      money.String(dc.TotalDebit),
		ExpectedClosing: money.String(dc.ExpectedClosing),
		ActualClosing:   money.String(dc.ActualClosing),
		Difference:      money.String(dc.Difference),
		Variance:        string(closing.ClassifyVariance(dc.Difference)),
		IsLocked:        dc.IsLocked,
		Notes:           dc.Notes,
		CountedBy:       dc.CountedBy,
		CreatedBy:       dc.CreatedBy,
		CreatedAt:       dc.CreatedAt,
		UpdatedAt:       dc.UpdatedAt,
	}
}
