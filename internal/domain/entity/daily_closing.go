package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyClosing cierre de caja de un día hábil. Hay uno por fecha.
//
// Invariantes:
//   - ExpectedClosing == OpeningCash + TotalCredit − TotalDebit
//   - Difference == ActualClosing − ExpectedClosing
//   - IsLocked solo pasa de false a true.
type DailyClosing struct {
	ID              string
	Date            time.Time
	OpeningCash     decimal.Decimal
	TotalCredit     decimal.Decimal
	TotalDebit      decimal.Decimal
	ExpectedClosing decimal.Decimal
	ActualClosing   decimal.Decimal
	Difference      decimal.Decimal
	IsLocked        bool
	Notes           string
	CountedBy       string // quien contó el efectivo; vacío si no se informó
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
