package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/aging"
)

// Row proyección de un registro en una vista. Las implementaciones exponen la fecha,
// el monto principal y, si aplica, el saldo pendiente usados al ordenar.
type Row interface {
	sortDate() time.Time
	sortAmount() decimal.Decimal
	sortOutstanding() (decimal.Decimal, bool)
}

// InvoiceRow fila del reporte de facturas.
type InvoiceRow struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	PartyID       string          `json:"party_id"`
	PartyName     string          `json:"party_name"`
	InvoiceType   string          `json:"invoice_type"`
	PaymentStatus string          `json:"payment_status"`
	Date          time.Time       `json:"date"`
	DueDate       time.Time       `json:"due_date"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
}

func (r InvoiceRow) sortDate() time.Time                    { return r.Date }
func (r InvoiceRow) sortAmount() decimal.Decimal            { return r.GrandTotal }
func (InvoiceRow) sortOutstanding() (decimal.Decimal, bool) { return decimal.Zero, false }

// TransactionRow fila del reporte de transacciones.
type TransactionRow struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	TransactionType string          `json:"transaction_type"`
	Category        string          `json:"category"`
	AccountID       string          `json:"account_id"`
	AccountType     string          `json:"account_type"`
	PartyID         string          `json:"party_id,omitempty"`
	InvoiceID       string          `json:"invoice_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

func (r TransactionRow) sortDate() time.Time                    { return r.Date }
func (r TransactionRow) sortAmount() decimal.Decimal            { return r.Amount }
func (TransactionRow) sortOutstanding() (decimal.Decimal, bool) { return decimal.Zero, false }

// MovementRow fila del reporte de inventario.
type MovementRow struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category"`
	MovementType string          `json:"movement_type"`
	QtyDelta     int64           `json:"qty_delta"`
	WeightDelta  decimal.Decimal `json:"weight_delta"`
	Reference    string          `json:"reference,omitempty"`
}

func (r MovementRow) sortDate() time.Time                    { return r.Date }
func (r MovementRow) sortAmount() decimal.Decimal            { return r.WeightDelta.Abs() }
func (MovementRow) sortOutstanding() (decimal.Decimal, bool) { return decimal.Zero, false }

// PartyRow fila del reporte de contrapartes con su saldo actual.
type PartyRow struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PartyType   string          `json:"party_type"`
	Phone       string          `json:"phone"`
	CreatedAt   time.Time       `json:"created_at"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

func (r PartyRow) sortDate() time.Time                      { return r.CreatedAt }
func (r PartyRow) sortAmount() decimal.Decimal              { return r.Outstanding }
func (r PartyRow) sortOutstanding() (decimal.Decimal, bool) { return r.Outstanding, true }

// OutstandingRow saldo pendiente de una contraparte con su aging.
type OutstandingRow struct {
	PartyID          string          `json:"party_id"`
	PartyName        string          `json:"party_name"`
	PartyType        string          `json:"party_type"`
	TotalInvoiced    decimal.Decimal `json:"total_invoiced"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	aging.Buckets
	LastActivity time.Time `json:"last_activity"`
}

func (r OutstandingRow) sortDate() time.Time                      { return r.LastActivity }
func (r OutstandingRow) sortAmount() decimal.Decimal              { return r.TotalOutstanding }
func (r OutstandingRow) sortOutstanding() (decimal.Decimal, bool) { return r.TotalOutstanding, true }

// sortRows ordena in-place de forma estable. Un criterio que no aplica a la vista es no-op.
func sortRows(rows []Row, key SortKey) {
	if len(rows) < 2 {
		return
	}
	var less func(a, b Row) bool
	switch key {
	case SortDateDesc:
		less = func(a, b Row) bool { return a.sortDate().After(b.sortDate()) }
	case SortDateAsc:
		less = func(a, b Row) bool { return a.sortDate().Before(b.sortDate()) }
	case SortAmountDesc:
		less = func(a, b Row) bool { return a.sortAmount().GreaterThan(b.sortAmount()) }
	case SortOutstandingDesc:
		if _, ok := rows[0].sortOutstanding(); !ok {
			return
		}
		less = func(a, b Row) bool {
			x, _ := a.sortOutstanding()
			y, _ := b.sortOutstanding()
			return x.GreaterThan(y)
		}
	default:
		return
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}
