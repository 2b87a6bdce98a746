package report

import (
	"encoding/json"

	"github.com/jhoicas/ledger-api/internal/domain/money"
)

// Los montos se serializan como string con 3 decimales fijos ("130.000"), igual que en cierres.
// Cada MarshalJSON redeclara los campos decimales como string; el campo más superficial gana.

// MarshalJSON totales con escala fija.
func (s Summary) MarshalJSON() ([]byte, error) {
	totals := make(map[string]string, len(s.Totals))
	for k, v := range s.Totals {
		totals[k] = money.String(v)
	}
	counts := s.Counts
	if counts == nil {
		counts = map[string]int{}
	}
	return json.Marshal(struct {
		Totals map[string]string `json:"totals"`
		Counts map[string]int    `json:"counts"`
	}{totals, counts})
}

func (a Anomaly) MarshalJSON() ([]byte, error) {
	type alias Anomaly
	return json.Marshal(struct {
		alias
		Value string `json:"value"`
	}{alias(a), money.String(a.Value)})
}

func (r InvoiceRow) MarshalJSON() ([]byte, error) {
	type alias InvoiceRow
	return json.Marshal(struct {
		alias
		GrandTotal string `json:"grand_total"`
		PaidAmount string `json:"paid_amount"`
		BalanceDue string `json:"balance_due"`
	}{alias(r), money.String(r.GrandTotal), money.String(r.PaidAmount), money.String(r.BalanceDue)})
}

func (r TransactionRow) MarshalJSON() ([]byte, error) {
	type alias TransactionRow
	return json.Marshal(struct {
		alias
		Amount string `json:"amount"`
	}{alias(r), money.String(r.Amount)})
}

// MarshalJSON el peso también usa 3 decimales (miligramos).
func (r MovementRow) MarshalJSON() ([]byte, error) {
	type alias MovementRow
	return json.Marshal(struct {
		alias
		WeightDelta string `json:"weight_delta"`
	}{alias(r), money.String(r.WeightDelta)})
}

func (r PartyRow) MarshalJSON() ([]byte, error) {
	type alias PartyRow
	return json.Marshal(struct {
		alias
		Outstanding string `json:"outstanding"`
	}{alias(r), money.String(r.Outstanding)})
}

func (r OutstandingRow) MarshalJSON() ([]byte, error) {
	type alias OutstandingRow
	return json.Marshal(struct {
		alias
		TotalInvoiced    string `json:"total_invoiced"`
		TotalPaid        string `json:"total_paid"`
		TotalOutstanding string `json:"total_outstanding"`
		Days0To7         string `json:"bucket_0_7"`
		Days8To30        string `json:"bucket_8_30"`
		Days31Plus       string `json:"bucket_31_plus"`
	}{
		alias(r),
		money.String(r.TotalInvoiced), money.String(r.TotalPaid), money.String(r.TotalOutstanding),
		money.String(r.Days0To7), money.String(r.Days8To30), money.String(r.Days31Plus),
	})
}
