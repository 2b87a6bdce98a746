package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

func invoicesView(rs *RecordSet, f Filter) (Summary, []Row, []Anomaly) {
	names := partyNames(rs.Parties)

	var (
		totalAmount, totalPaid, totalBalance decimal.Decimal
		rows                                 []Row
		anomalies                            []Anomaly
	)
	for i := range rs.Invoices {
		inv := &rs.Invoices[i]
		if !f.match(KeyInvoiceType, inv.InvoiceType) ||
			!f.match(KeyPaymentStatus, inv.PaymentStatus) ||
			!f.matchParty(inv.PartyID) ||
			!f.Range.Contains(inv.Date) {
			continue
		}

		balance := inv.RawBalance()
		if balance.IsNegative() {
			// pagado de más: se reporta la anomalía y el saldo se muestra en cero
			anomalies = append(anomalies, Anomaly{RecordID: inv.ID, Kind: AnomalyNegativeBalanceDue, Value: balance})
			balance = decimal.Zero
		}

		totalAmount = totalAmount.Add(inv.GrandTotal)
		totalPaid = totalPaid.Add(inv.PaidAmount)
		totalBalance = totalBalance.Add(balance)

		rows = append(rows, InvoiceRow{
			ID:            inv.ID,
			Number:        inv.Number,
			PartyID:       inv.PartyID,
			PartyName:     names[inv.PartyID],
			InvoiceType:   inv.InvoiceType,
			PaymentStatus: inv.PaymentStatus,
			Date:          inv.Date,
			DueDate:       inv.Due(),
			GrandTotal:    inv.GrandTotal,
			PaidAmount:    inv.PaidAmount,
			BalanceDue:    balance,
		})
	}

	s := newSummary()
	s.Totals["total_amount"] = totalAmount
	s.Totals["total_paid"] = totalPaid
	s.Totals["total_balance"] = totalBalance
	s.Counts["invoices"] = len(rows)
	s.Counts["anomalies"] = len(anomalies)
	return s, rows, anomalies
}

// partiesView lista contrapartes con su saldo actual. El saldo sale de computeOutstanding
// sobre todo el snapshot (sin rango) para que coincida con el reporte de saldos.
func partiesView(rs *RecordSet, f Filter) (Summary, []Row) {
	balances, _, _ := computeOutstanding(rs, f.unbounded())
	outstanding := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		outstanding[b.PartyID] = b.TotalOutstanding
	}

	var (
		total              decimal.Decimal
		customers, vendors int
		rows               []Row
	)
	for i := range rs.Parties {
		p := &rs.Parties[i]
		if !f.match(KeyPartyType, p.PartyType) || !f.matchParty(p.ID) {
			continue
		}
		row := PartyRow{
			ID:          p.ID,
			Name:        p.Name,
			PartyType:   p.PartyType,
			Phone:       p.Phone,
			CreatedAt:   p.CreatedAt,
			Outstanding: outstanding[p.ID],
		}
		switch p.PartyType {
		case entity.PartyTypeCustomer:
			customers++
		case entity.PartyTypeVendor:
			vendors++
		}
		total = total.Add(row.Outstanding)
		rows = append(rows, row)
	}

	s := newSummary()
	s.Totals["total_outstanding"] = total
	s.Counts["parties"] = len(rows)
	s.Counts["customers"] = customers
	s.Counts["vendors"] = vendors
	return s, rows
}

func transactionsView(rs *RecordSet, f Filter) (Summary, []Row) {
	credit, debit, rows := transactionTotals(rs, f, true)

	s := newSummary()
	s.Totals["total_credit"] = credit
	s.Totals["total_debit"] = debit
	s.Totals["net_balance"] = credit.Sub(debit)
	s.Counts["transactions"] = len(rows)
	return s, rows
}

// transactionTotals suma créditos y débitos filtrados; withRows=false evita armar filas
// cuando solo interesan los totales (resumen financiero).
func transactionTotals(rs *RecordSet, f Filter, withRows bool) (credit, debit decimal.Decimal, rows []Row) {
	for i := range rs.Transactions {
		tx := &rs.Transactions[i]
		if !f.match(KeyTransactionType, tx.TransactionType) ||
			!f.match(KeyCategory, tx.Category) ||
			!f.matchParty(tx.PartyID) ||
			!f.Range.Contains(tx.Date) {
			continue
		}
		switch tx.TransactionType {
		case entity.TransactionTypeCredit:
			credit = credit.Add(tx.Amount)
		case entity.TransactionTypeDebit:
			debit = debit.Add(tx.Amount)
		}
		if !withRows {
			continue
		}
		rows = append(rows, TransactionRow{
			ID:              tx.ID,
			Date:            tx.Date,
			TransactionType: tx.TransactionType,
			Category:        tx.Category,
			AccountID:       tx.AccountID,
			AccountType:     tx.AccountType,
			PartyID:         tx.PartyID,
			InvoiceID:       tx.InvoiceID,
			Amount:          tx.Amount,
			Description:     tx.Description,
		})
	}
	return credit, debit, rows
}

// inventoryView separa entradas y salidas por signo del delta; nunca se netean antes de separar.
func inventoryView(rs *RecordSet, f Filter) (Summary, []Row) {
	var (
		qtyIn, qtyOut       int64
		weightIn, weightOut decimal.Decimal
		rows                []Row
	)
	for i := range rs.Movements {
		m := &rs.Movements[i]
		if !f.match(KeyMovementType, m.MovementType) ||
			!f.match(KeyCategory, m.Category) ||
			!f.Range.Contains(m.Date) {
			continue
		}
		switch {
		case m.QtyDelta > 0:
			qtyIn += m.QtyDelta
		case m.QtyDelta < 0:
			qtyOut += -m.QtyDelta
		}
		switch {
		case m.WeightDelta.IsPositive():
			weightIn = weightIn.Add(m.WeightDelta)
		case m.WeightDelta.IsNegative():
			weightOut = weightOut.Add(m.WeightDelta.Abs())
		}
		rows = append(rows, MovementRow{
			ID:           m.ID,
			Date:         m.Date,
			ItemID:       m.ItemID,
			ItemName:     m.ItemName,
			Category:     m.Category,
			MovementType: m.MovementType,
			QtyDelta:     m.QtyDelta,
			WeightDelta:  m.WeightDelta,
			Reference:    m.Reference,
		})
	}

	s := newSummary()
	s.Totals["weight_in"] = weightIn
	s.Totals["weight_out"] = weightOut
	s.Counts["qty_in"] = int(qtyIn)
	s.Counts["qty_out"] = int(qtyOut)
	s.Counts["movements"] = len(rows)
	return s, rows
}

func partyNames(parties []entity.Party) map[string]string {
	names := make(map[string]string, len(parties))
	for i := range parties {
		names[parties[i].ID] = parties[i].Name
	}
	return names
}
