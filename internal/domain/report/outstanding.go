package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/aging"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// partyBalance acumulador por contraparte mientras se recorre el snapshot.
type partyBalance struct {
	row    OutstandingRow
	credit decimal.Decimal // excedentes de facturas + pagos a cuenta, a descontar del aging
	active bool
}

// outstandingTotals resumen global de saldos.
type outstandingTotals struct {
	customerDue   decimal.Decimal
	vendorPayable decimal.Decimal
	total         decimal.Decimal
	buckets       aging.Buckets
}

// computeOutstanding agrupa facturas y pagos a cuenta por contraparte.
//
// total_outstanding = total_invoiced − total_paid, y el total global es la suma con signo de
// esos saldos (igual a la suma de tramos). Una contraparte sin tipo conocido no entra en filas
// ni totales: se devuelve como anomalía unknown_party_type con su saldo en signo de caja. Cada factura con saldo positivo suma su saldo
// al tramo de su vencimiento; los créditos que no pertenecen al saldo de una factura (excedente
// pagado o pago a cuenta) se aplican del tramo más antiguo al más reciente, de modo que la suma
// de tramos coincide exactamente con el saldo.
func computeOutstanding(rs *RecordSet, f Filter) ([]OutstandingRow, outstandingTotals, []Anomaly) {
	var (
		order    []string
		balances = map[string]*partyBalance{}
	)
	get := func(partyID, inferredType string) *partyBalance {
		if b, ok := balances[partyID]; ok {
			if b.row.PartyType == "" {
				b.row.PartyType = inferredType
			}
			return b
		}
		b := &partyBalance{row: OutstandingRow{PartyID: partyID, PartyType: inferredType}}
		balances[partyID] = b
		order = append(order, partyID)
		return b
	}

	for i := range rs.Parties {
		p := &rs.Parties[i]
		b := get(p.ID, p.PartyType)
		b.row.PartyName = p.Name
		b.row.PartyType = p.PartyType
	}

	for i := range rs.Invoices {
		inv := &rs.Invoices[i]
		if inv.PartyID == "" || !f.matchParty(inv.PartyID) || !f.Range.Contains(inv.Date) {
			continue
		}
		b := get(inv.PartyID, partyTypeFor(inv.InvoiceType))
		b.active = true
		b.row.TotalInvoiced = b.row.TotalInvoiced.Add(inv.GrandTotal)
		b.row.TotalPaid = b.row.TotalPaid.Add(inv.PaidAmount)
		touch(&b.row, inv.Date)

		switch raw := inv.RawBalance(); {
		case raw.IsPositive():
			b.row.Buckets = b.row.Buckets.Add(aging.Classify(inv.Due(), f.AsOf), raw)
		case raw.IsNegative():
			b.credit = b.credit.Sub(raw)
		}
	}

	for i := range rs.Transactions {
		tx := &rs.Transactions[i]
		if tx.PartyID == "" || tx.InvoiceID != "" || !f.matchParty(tx.PartyID) || !f.Range.Contains(tx.Date) {
			continue
		}
		b, ok := balances[tx.PartyID]
		if !ok {
			b = get(tx.PartyID, "")
		}
		paid := settlement(b.row.PartyType, tx)
		b.active = true
		b.row.TotalPaid = b.row.TotalPaid.Add(paid)
		b.credit = b.credit.Add(paid)
		touch(&b.row, tx.Date)
	}

	var (
		rows      = make([]OutstandingRow, 0, len(order))
		totals    outstandingTotals
		anomalies []Anomaly
	)
	for _, id := range order {
		b := balances[id]
		if !b.active {
			continue
		}
		b.row.TotalOutstanding = b.row.TotalInvoiced.Sub(b.row.TotalPaid)
		if !knownPartyType(b.row.PartyType) {
			anomalies = append(anomalies, Anomaly{RecordID: id, Kind: AnomalyUnknownPartyType, Value: b.row.TotalOutstanding})
			continue
		}
		if !f.match(KeyPartyType, b.row.PartyType) {
			continue
		}
		b.row.Buckets = b.row.Buckets.ApplyCredit(b.credit)

		switch out := b.row.TotalOutstanding; {
		case !out.IsPositive():
		case b.row.PartyType == entity.PartyTypeCustomer:
			totals.customerDue = totals.customerDue.Add(out)
		case b.row.PartyType == entity.PartyTypeVendor:
			totals.vendorPayable = totals.vendorPayable.Add(out)
		}
		totals.total = totals.total.Add(b.row.TotalOutstanding)
		totals.buckets = totals.buckets.Merge(b.row.Buckets)
		rows = append(rows, b.row)
	}
	return rows, totals, anomalies
}

func outstandingView(rs *RecordSet, f Filter) (Summary, []Row, []Anomaly) {
	partyRows, totals, anomalies := computeOutstanding(rs, f)

	s := newSummary()
	s.Totals["customer_due"] = totals.customerDue
	s.Totals["vendor_payable"] = totals.vendorPayable
	s.Totals["total_outstanding"] = totals.total
	s.Totals["bucket_0_7"] = totals.buckets.Days0To7
	s.Totals["bucket_8_30"] = totals.buckets.Days8To30
	s.Totals["bucket_31_plus"] = totals.buckets.Days31Plus
	s.Counts["parties"] = len(partyRows)
	s.Counts["anomalies"] = len(anomalies)

	rows := make([]Row, 0, len(partyRows))
	for _, r := range partyRows {
		rows = append(rows, r)
	}
	return s, rows, anomalies
}

// settlement monto con el que un pago sin factura reduce el saldo de la contraparte.
// Cliente: un crédito en caja es cobro (+), un débito es devolución (−). Proveedor al revés.
// Sin tipo el monto queda con el signo de caja; esa contraparte solo se reporta como anomalía.
func settlement(partyType string, tx *entity.Transaction) decimal.Decimal {
	switch partyType {
	case entity.PartyTypeVendor:
		return tx.Signed().Neg()
	default:
		return tx.Signed()
	}
}

func knownPartyType(t string) bool {
	return t == entity.PartyTypeCustomer || t == entity.PartyTypeVendor
}

// partyTypeFor infiere el tipo de contraparte cuando no hay registro de Party.
func partyTypeFor(invoiceType string) string {
	switch invoiceType {
	case entity.InvoiceTypeSale:
		return entity.PartyTypeCustomer
	case entity.InvoiceTypePurchase:
		return entity.PartyTypeVendor
	default:
		return ""
	}
}

func touch(r *OutstandingRow, t time.Time) {
	if t.After(r.LastActivity) {
		r.LastActivity = t
	}
}
