package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// financialSummary compone el resumen general. Los sub-cálculos son independientes y se
// ejecutan en paralelo; cada goroutine solo lee rs y escribe en su propio canal.
// total_outstanding es el mismo que el del reporte de saldos.
func financialSummary(rs *RecordSet, f Filter) (Summary, []Anomaly) {
	sub := f.withoutTypes()

	type salesResult struct{ sales, purchases decimal.Decimal }
	type flowResult struct{ credit, debit decimal.Decimal }
	type balanceResult struct{ cash, bank decimal.Decimal }

	salesCh := make(chan salesResult, 1)
	type outResult struct {
		totals    outstandingTotals
		anomalies []Anomaly
	}
	outCh := make(chan outResult, 1)
	flowCh := make(chan flowResult, 1)
	balanceCh := make(chan balanceResult, 1)
	closingCh := make(chan decimal.Decimal, 1)

	go func() {
		var r salesResult
		for i := range rs.Invoices {
			inv := &rs.Invoices[i]
			if !sub.matchParty(inv.PartyID) || !sub.Range.Contains(inv.Date) {
				continue
			}
			switch inv.InvoiceType {
			case entity.InvoiceTypeSale:
				r.sales = r.sales.Add(inv.GrandTotal)
			case entity.InvoiceTypePurchase:
				r.purchases = r.purchases.Add(inv.GrandTotal)
			}
		}
		salesCh <- r
	}()
	go func() {
		_, totals, anomalies := computeOutstanding(rs, sub)
		outCh <- outResult{totals, anomalies}
	}()
	go func() {
		credit, debit, _ := transactionTotals(rs, sub, false)
		flowCh <- flowResult{credit, debit}
	}()
	go func() {
		var r balanceResult
		for i := range rs.Accounts {
			switch a := &rs.Accounts[i]; a.AccountType {
			case entity.AccountTypeCash:
				r.cash = r.cash.Add(a.Balance)
			case entity.AccountTypeBank:
				r.bank = r.bank.Add(a.Balance)
			}
		}
		balanceCh <- r
	}()
	go func() {
		closingCh <- latestClosingDifference(rs.Closings, sub)
	}()

	sales := <-salesCh
	out := <-outCh
	flow := <-flowCh
	balances := <-balanceCh
	closingDiff := <-closingCh

	s := newSummary()
	s.Totals["total_sales"] = sales.sales
	s.Totals["total_purchases"] = sales.purchases
	s.Totals["net_profit"] = sales.sales.Sub(sales.purchases)
	s.Totals["customer_due"] = out.totals.customerDue
	s.Totals["vendor_payable"] = out.totals.vendorPayable
	s.Totals["total_outstanding"] = out.totals.total
	s.Totals["cash_balance"] = balances.cash
	s.Totals["bank_balance"] = balances.bank
	s.Totals["total_credit"] = flow.credit
	s.Totals["total_debit"] = flow.debit
	s.Totals["net_flow"] = flow.credit.Sub(flow.debit)
	s.Totals["daily_closing_difference"] = closingDiff
	return s, out.anomalies
}

// latestClosingDifference diferencia del cierre más reciente dentro del rango; cero si no hay.
func latestClosingDifference(closings []entity.DailyClosing, f Filter) decimal.Decimal {
	var latest *entity.DailyClosing
	for i := range closings {
		c := &closings[i]
		if !f.Range.Contains(c.Date) {
			continue
		}
		if latest == nil || c.Date.After(latest.Date) {
			latest = c
		}
	}
	if latest == nil {
		return decimal.Zero
	}
	return latest.Difference
}
