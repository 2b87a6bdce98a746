// Package aging clasifica saldos pendientes por días de vencimiento.
package aging

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/daterange"
)

// Bucket tramo de antigüedad.
type Bucket string

// Tramos. No existe un tramo "no vencido": lo que vence en el futuro cae en 0_7.
const (
	Bucket0To7   Bucket = "0_7"
	Bucket8To30  Bucket = "8_30"
	Bucket31Plus Bucket = "31_plus"
)

// DaysOverdue días calendario completos entre due y asOf, con piso en cero.
func DaysOverdue(due, asOf time.Time) int {
	// Día en UTC para no perder/ganar una hora en cambios de horario.
	d := civil(asOf).Sub(civil(due))
	days := int(d.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Classify devuelve el tramo para un documento con vencimiento due evaluado en asOf.
func Classify(due, asOf time.Time) Bucket {
	switch days := DaysOverdue(due, asOf); {
	case days <= 7:
		return Bucket0To7
	case days <= 30:
		return Bucket8To30
	default:
		return Bucket31Plus
	}
}

func civil(t time.Time) time.Time {
	day := daterange.Day(t)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// Buckets montos acumulados por tramo.
type Buckets struct {
	Days0To7   decimal.Decimal `json:"bucket_0_7"`
	Days8To30  decimal.Decimal `json:"bucket_8_30"`
	Days31Plus decimal.Decimal `json:"bucket_31_plus"`
}

// Add devuelve una copia con amount sumado al tramo b.
func (b Buckets) Add(bucket Bucket, amount decimal.Decimal) Buckets {
	switch bucket {
	case Bucket8To30:
		b.Days8To30 = b.Days8To30.Add(amount)
	case Bucket31Plus:
		b.Days31Plus = b.Days31Plus.Add(amount)
	default:
		b.Days0To7 = b.Days0To7.Add(amount)
	}
	return b
}

// Merge suma tramo a tramo.
func (b Buckets) Merge(o Buckets) Buckets {
	return Buckets{
		Days0To7:   b.Days0To7.Add(o.Days0To7),
		Days8To30:  b.Days8To30.Add(o.Days8To30),
		Days31Plus: b.Days31Plus.Add(o.Days31Plus),
	}
}

// Total suma de los tres tramos.
func (b Buckets) Total() decimal.Decimal {
	return b.Days0To7.Add(b.Days8To30).Add(b.Days31Plus)
}

// ApplyCredit descuenta un crédito (pagos a cuenta, excedentes) empezando por el tramo más viejo.
// Lo que sobra, o un crédito negativo, queda en 0_7: así Total() se mantiene exacto.
func (b Buckets) ApplyCredit(credit decimal.Decimal) Buckets {
	if !credit.IsPositive() {
		b.Days0To7 = b.Days0To7.Sub(credit)
		return b
	}
	b.Days31Plus, credit = consume(b.Days31Plus, credit)
	b.Days8To30, credit = consume(b.Days8To30, credit)
	b.Days0To7 = b.Days0To7.Sub(credit)
	return b
}

// consume resta de bucket hasta dejarlo en cero y devuelve el crédito restante.
func consume(bucket, credit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if !bucket.IsPositive() || !credit.IsPositive() {
		return bucket, credit
	}
	if credit.GreaterThanOrEqual(bucket) {
		return decimal.Zero, credit.Sub(bucket)
	}
	return bucket.Sub(credit), decimal.Zero
}
