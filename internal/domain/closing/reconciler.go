// Package closing calcula el cierre de caja diario: efectivo esperado contra efectivo contado.
//
// Toda la aritmética es decimal exacta; no se redondea en ningún paso intermedio.
package closing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Variance clasificación de la diferencia (solo presentación, no se persiste).
type Variance string

// Clasificaciones.
const (
	VarianceMatched Variance = "matched"
	VarianceMinor   Variance = "minor variance"
	VarianceMajor   Variance = "major variance"
)

// MinorVarianceLimit diferencia máxima (en valor absoluto, OMR) considerada menor.
var MinorVarianceLimit = decimal.NewFromInt(10)

// Result resultado de conciliar un día.
type Result struct {
	Expected   decimal.Decimal
	Difference decimal.Decimal
	Variance   Variance
}

// Reconcile expected = opening + credit − debit; difference = actual − expected.
func Reconcile(openingCash, totalCredit, totalDebit, actualClosing decimal.Decimal) Result {
	expected := openingCash.Add(totalCredit).Sub(totalDebit)
	diff := actualClosing.Sub(expected)
	return Result{
		Expected:   expected,
		Difference: diff,
		Variance:   ClassifyVariance(diff),
	}
}

// ClassifyVariance 0 → matched; 0 < |d| ≤ 10 → minor; |d| > 10 → major.
func ClassifyVariance(diff decimal.Decimal) Variance {
	switch abs := diff.Abs(); {
	case abs.IsZero():
		return VarianceMatched
	case abs.LessThanOrEqual(MinorVarianceLimit):
		return VarianceMinor
	default:
		return VarianceMajor
	}
}

// Input montos del día a conciliar.
type Input struct {
	OpeningCash   decimal.Decimal
	TotalCredit   decimal.Decimal
	TotalDebit    decimal.Decimal
	ActualClosing decimal.Decimal
	Notes         string
	CountedBy     string
}

// Apply recalcula dc con in. Si el cierre está bloqueado devuelve ErrLockedRecord
// y dc queda intacto.
func Apply(dc *entity.DailyClosing, in Input, now time.Time) (Result, error) {
	if dc == nil {
		return Result{}, fmt.Errorf("closing: %w: cierre nil", domain.ErrInvalidInput)
	}
	if dc.IsLocked {
		return Result{}, fmt.Errorf("closing %s: %w", dc.Date.Format(daterange.DateLayout), domain.ErrLockedRecord)
	}
	res := Reconcile(in.OpeningCash, in.TotalCredit, in.TotalDebit, in.ActualClosing)

	dc.OpeningCash = in.OpeningCash
	dc.TotalCredit = in.TotalCredit
	dc.TotalDebit = in.TotalDebit
	dc.ActualClosing = in.ActualClosing
	dc.ExpectedClosing = res.Expected
	dc.Difference = res.Difference
	dc.Notes = in.Notes
	dc.CountedBy = in.CountedBy
	dc.UpdatedAt = now
	return res, nil
}

// Lock bloquea el cierre. Es irreversible: bloquear uno ya bloqueado es ErrLockedRecord.
func Lock(dc *entity.DailyClosing, now time.Time) error {
	if dc == nil {
		return fmt.Errorf("closing: %w: cierre nil", domain.ErrInvalidInput)
	}
	if dc.IsLocked {
		return fmt.Errorf("closing %s: %w", dc.Date.Format(daterange.DateLayout), domain.ErrLockedRecord)
	}
	dc.IsLocked = true
	dc.UpdatedAt = now
	return nil
}

// Verify comprueba los invariantes de un cierre leído de la base.
func Verify(dc *entity.DailyClosing) error {
	expected := dc.OpeningCash.Add(dc.TotalCredit).Sub(dc.TotalDebit)
	if !dc.ExpectedClosing.Equal(expected) {
		return fmt.Errorf("closing: expected_closing %s != %s", dc.ExpectedClosing, expected)
	}
	if diff := dc.ActualClosing.Sub(dc.ExpectedClosing); !dc.Difference.Equal(diff) {
		return fmt.Errorf("closing: difference %s != %s", dc.Difference, diff)
	}
	return nil
}

// DayTotals créditos y débitos de caja de un día.
type DayTotals struct {
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Totals suma las transacciones de cuentas de caja cuya fecha cae en day.
// Las de banco no mueven el efectivo contado en el cajón.
func Totals(txs []entity.Transaction, day time.Time) DayTotals {
	d := daterange.Day(day)
	r := daterange.Range{Start: &d, End: &d}

	var out DayTotals
	for i := range txs {
		tx := &txs[i]
		if tx.AccountType != entity.AccountTypeCash || !r.Contains(tx.Date) {
			continue
		}
		switch tx.TransactionType {
		case entity.TransactionTypeCredit:
			out.Credit = out.Credit.Add(tx.Amount)
		case entity.TransactionTypeDebit:
			out.Debit = out.Debit.Add(tx.Amount)
		}
	}
	return out
}
