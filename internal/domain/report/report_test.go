package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s got %s", want, got.String()}, msg...)...)
}

var asOf = date(2024, 2, 15)

// fixture: un cliente con un pago en exceso y un pago a cuenta, y un proveedor con saldo parcial.
func fixture() *report.RecordSet {
	return &report.RecordSet{
		Parties: []entity.Party{
			{ID: "c1", Name: "Al Noor Trading", PartyType: entity.PartyTypeCustomer, CreatedAt: date(2023, 6, 1)},
			{ID: "v1", Name: "Muscat Gold", PartyType: entity.PartyTypeVendor, CreatedAt: date(2023, 7, 1)},
		},
		Invoices: []entity.Invoice{
			{ID: "i1", Number: "S-001", PartyID: "c1", InvoiceType: entity.InvoiceTypeSale, PaymentStatus: entity.PaymentStatusUnpaid,
				Date: date(2023, 12, 20), DueDate: date(2024, 1, 1), GrandTotal: dec("100.000"), PaidAmount: dec("0")},
			{ID: "i2", Number: "S-002", PartyID: "c1", InvoiceType: entity.InvoiceTypeSale, PaymentStatus: entity.PaymentStatusPaid,
				Date: date(2024, 1, 20), GrandTotal: dec("50.000"), PaidAmount: dec("60.000")},
			{ID: "p1", Number: "P-001", PartyID: "v1", InvoiceType: entity.InvoiceTypePurchase, PaymentStatus: entity.PaymentStatusPartial,
				Date: date(2024, 2, 1), DueDate: date(2024, 2, 10), GrandTotal: dec("200.000"), PaidAmount: dec("50.000")},
		},
		Transactions: []entity.Transaction{
			{ID: "t1", PartyID: "c1", AccountID: "cash", AccountType: entity.AccountTypeCash, TransactionType: entity.TransactionTypeCredit,
				Category: "sales", Amount: dec("30.000"), Date: date(2024, 2, 5)},
			{ID: "t2", PartyID: "v1", AccountID: "bank", AccountType: entity.AccountTypeBank, TransactionType: entity.TransactionTypeDebit,
				Category: "purchase", Amount: dec("20.000"), Date: date(2024, 2, 6)},
			{ID: "t3", AccountID: "cash", AccountType: entity.AccountTypeCash, TransactionType: entity.TransactionTypeDebit,
				Category: "rent", Amount: dec("30.000"), Date: date(2024, 2, 7)},
		},
		Movements: []entity.InventoryMovement{
			{ID: "m1", ItemID: "ring", Category: "gold", MovementType: entity.MovementTypeIn, QtyDelta: 10, WeightDelta: dec("2.500"), Date: date(2024, 2, 1)},
			{ID: "m2", ItemID: "ring", Category: "gold", MovementType: entity.MovementTypeSale, QtyDelta: -4, WeightDelta: dec("-1.000"), Date: date(2024, 2, 2)},
			{ID: "m3", ItemID: "chain", Category: "silver", MovementType: entity.MovementTypeAdjustment, QtyDelta: -1, WeightDelta: dec("0"), Date: date(2024, 2, 3)},
		},
		Accounts: []entity.Account{
			{ID: "cash", Name: "Caja", AccountType: entity.AccountTypeCash, Balance: dec("500.000")},
			{ID: "bank", Name: "Bank Muscat", AccountType: entity.AccountTypeBank, Balance: dec("1000.000")},
		},
		Closings: []entity.DailyClosing{
			{ID: "d1", Date: date(2024, 2, 10), Difference: dec("5.000")},
			{ID: "d2", Date: date(2024, 2, 14), Difference: dec("-2.000")},
		},
	}
}

func aggregate(t *testing.T, f report.Filter, typ report.Type) *report.View {
	t.Helper()
	if f.AsOf.IsZero() {
		f.AsOf = asOf
	}
	v, err := report.Aggregate(fixture(), f, typ)
	require.NoError(t, err)
	return v
}

func ids(t *testing.T, rows []report.Row) []string {
	t.Helper()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		switch x := r.(type) {
		case report.InvoiceRow:
			out = append(out, x.ID)
		case report.TransactionRow:
			out = append(out, x.ID)
		case report.MovementRow:
			out = append(out, x.ID)
		case report.PartyRow:
			out = append(out, x.ID)
		case report.OutstandingRow:
			out = append(out, x.PartyID)
		default:
			t.Fatalf("fila inesperada %T", r)
		}
	}
	return out
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]report.Type{
		"outstanding":       report.TypeOutstanding,
		" Invoices ":        report.TypeInvoices,
		"financial-summary": report.TypeFinancialSummary,
		"overview":          report.TypeFinancialSummary,
	} {
		got, err := report.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseType("payroll")
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
}

func TestAggregate_TipoDesconocido(t *testing.T) {
	v, err := report.Aggregate(fixture(), report.Filter{}, report.Type("payroll"))
	assert.Nil(t, v)
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
}

func TestAggregate_RecordSetNil(t *testing.T) {
	v, err := report.Aggregate(nil, report.Filter{AsOf: asOf}, report.TypeInvoices)
	require.NoError(t, err)
	assert.Empty(t, v.Rows)
	assert.NotNil(t, v.Rows)
	assert.NotNil(t, v.Anomalies)
	assert.Equal(t, 0, v.Summary.Counts["invoices"])
}

// ── Outstanding ──────────────────────────────────────────────────────────────

// c1: i1 (100, 45 días vencida) + i2 (pagada de más en 10) + pago a cuenta de 30.
// Los 40 de crédito se descuentan del tramo más antiguo: 31_plus queda en 60.
func TestOutstanding_TramosSumanElSaldo(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeOutstanding)
	require.Len(t, v.Rows, 2)

	c1 := v.Rows[0].(report.OutstandingRow)
	assert.Equal(t, "c1", c1.PartyID)
	assert.Equal(t, "Al Noor Trading", c1.PartyName)
	assertDec(t, "150", c1.TotalInvoiced)
	assertDec(t, "90", c1.TotalPaid)
	assertDec(t, "60", c1.TotalOutstanding)
	assertDec(t, "0", c1.Days0To7)
	assertDec(t, "0", c1.Days8To30)
	assertDec(t, "60", c1.Days31Plus)
	assert.Equal(t, date(2024, 2, 5), c1.LastActivity)

	v1 := v.Rows[1].(report.OutstandingRow)
	assert.Equal(t, entity.PartyTypeVendor, v1.PartyType)
	assertDec(t, "70", v1.TotalPaid) // 50 en factura + 20 pagados a cuenta
	assertDec(t, "130", v1.TotalOutstanding)
	assertDec(t, "130", v1.Days0To7) // vence hace 5 días

	for _, r := range v.Rows {
		row := r.(report.OutstandingRow)
		assert.True(t, row.Buckets.Total().Equal(row.TotalOutstanding), row.PartyID)
	}

	assertDec(t, "60", v.Summary.Totals["customer_due"])
	assertDec(t, "130", v.Summary.Totals["vendor_payable"])
	assertDec(t, "190", v.Summary.Totals["total_outstanding"])
	assertDec(t, "130", v.Summary.Totals["bucket_0_7"])
	assertDec(t, "0", v.Summary.Totals["bucket_8_30"])
	assertDec(t, "60", v.Summary.Totals["bucket_31_plus"])
	assert.Equal(t, 2, v.Summary.Counts["parties"])
}

func TestOutstanding_FiltroPorTipoDeContraparte(t *testing.T) {
	v := aggregate(t, report.Filter{Types: map[string]string{report.KeyPartyType: "Vendor"}}, report.TypeOutstanding)
	assert.Equal(t, []string{"v1"}, ids(t, v.Rows))
	assertDec(t, "0", v.Summary.Totals["customer_due"])
	assertDec(t, "130", v.Summary.Totals["vendor_payable"])
}

// Un saldo pagado de más supera lo facturado: el tramo 0_7 queda negativo y la suma cuadra.
func TestOutstanding_SaldoAFavor(t *testing.T) {
	rs := &report.RecordSet{
		Invoices: []entity.Invoice{
			{ID: "x", PartyID: "c9", InvoiceType: entity.InvoiceTypeSale, Date: date(2024, 1, 1),
				GrandTotal: dec("10.000"), PaidAmount: dec("25.000")},
		},
	}
	v, err := report.Aggregate(rs, report.Filter{AsOf: asOf}, report.TypeOutstanding)
	require.NoError(t, err)
	require.Len(t, v.Rows, 1)

	row := v.Rows[0].(report.OutstandingRow)
	assert.Equal(t, entity.PartyTypeCustomer, row.PartyType) // inferido de la factura de venta
	assertDec(t, "-15", row.TotalOutstanding)
	assertDec(t, "-15", row.Days0To7)
	assertDec(t, "0", v.Summary.Totals["customer_due"])
}

func TestOutstanding_OrdenPorSaldo(t *testing.T) {
	v := aggregate(t, report.Filter{Sort: report.SortOutstandingDesc}, report.TypeOutstanding)
	assert.Equal(t, []string{"v1", "c1"}, ids(t, v.Rows))
}

// Una contraparte sin tipo (pago a cuenta sin Party ni factura) no toma el signo de cliente:
// queda fuera de filas y totales y se informa como anomalía.
func TestOutstanding_ContraparteSinTipoSeInforma(t *testing.T) {
	rs := fixture()
	rs.Transactions = append(rs.Transactions, entity.Transaction{
		ID: "t9", PartyID: "x9", AccountID: "cash", AccountType: entity.AccountTypeCash,
		TransactionType: entity.TransactionTypeDebit, Category: "misc", Amount: dec("15.000"), Date: date(2024, 2, 8),
	})
	v, err := report.Aggregate(rs, report.Filter{AsOf: asOf}, report.TypeOutstanding)
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "v1"}, ids(t, v.Rows))
	assertDec(t, "190", v.Summary.Totals["total_outstanding"])
	require.Len(t, v.Anomalies, 1)
	assert.Equal(t, "x9", v.Anomalies[0].RecordID)
	assert.Equal(t, report.AnomalyUnknownPartyType, v.Anomalies[0].Kind)
	assertDec(t, "15", v.Anomalies[0].Value)
	assert.Equal(t, 1, v.Summary.Counts["anomalies"])

	sum, err := report.Aggregate(rs, report.Filter{AsOf: asOf}, report.TypeFinancialSummary)
	require.NoError(t, err)
	assertDec(t, "190", sum.Summary.Totals["total_outstanding"])
	assert.Len(t, sum.Anomalies, 1)
}

// El total del resumen es la suma con signo de saldos, igual que en el reporte de saldos,
// aun cuando un cliente tiene saldo a favor.
func TestOutstanding_TotalCoincideConResumen(t *testing.T) {
	rs := fixture()
	rs.Invoices = append(rs.Invoices, entity.Invoice{
		ID: "x", PartyID: "c9", InvoiceType: entity.InvoiceTypeSale, Date: date(2024, 1, 1),
		GrandTotal: dec("10.000"), PaidAmount: dec("15.000"),
	})
	out, err := report.Aggregate(rs, report.Filter{AsOf: asOf}, report.TypeOutstanding)
	require.NoError(t, err)
	sum, err := report.Aggregate(rs, report.Filter{AsOf: asOf}, report.TypeFinancialSummary)
	require.NoError(t, err)

	assertDec(t, "185", out.Summary.Totals["total_outstanding"])
	assertDec(t, "185", sum.Summary.Totals["total_outstanding"])
	assertDec(t, "60", sum.Summary.Totals["customer_due"])
	assertDec(t, "130", sum.Summary.Totals["vendor_payable"])

	buckets := out.Summary.Totals["bucket_0_7"].Add(out.Summary.Totals["bucket_8_30"]).Add(out.Summary.Totals["bucket_31_plus"])
	assertDec(t, "185", buckets)
}

// ── Invoices ─────────────────────────────────────────────────────────────────

func TestInvoices_SaldoNegativoSeReportaComoAnomalia(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeInvoices)
	require.Len(t, v.Rows, 3)

	i2 := v.Rows[1].(report.InvoiceRow)
	assert.Equal(t, "i2", i2.ID)
	assertDec(t, "0", i2.BalanceDue)
	assert.Equal(t, "Al Noor Trading", i2.PartyName)
	assert.Equal(t, date(2024, 1, 20), i2.DueDate) // sin vencimiento usa la fecha de emisión

	require.Len(t, v.Anomalies, 1)
	assert.Equal(t, "i2", v.Anomalies[0].RecordID)
	assert.Equal(t, report.AnomalyNegativeBalanceDue, v.Anomalies[0].Kind)
	assertDec(t, "-10", v.Anomalies[0].Value)

	assertDec(t, "350", v.Summary.Totals["total_amount"])
	assertDec(t, "110", v.Summary.Totals["total_paid"])
	assertDec(t, "250", v.Summary.Totals["total_balance"])
	assert.Equal(t, 1, v.Summary.Counts["anomalies"])
}

// "all", vacío o un valor fuera de la enumeración nunca restringen.
func TestInvoices_FiltrosSinRestriccion(t *testing.T) {
	for _, types := range []map[string]string{
		nil,
		{report.KeyInvoiceType: "all"},
		{report.KeyInvoiceType: "ALL", report.KeyPaymentStatus: ""},
		{report.KeyPaymentStatus: "refunded"},
	} {
		v := aggregate(t, report.Filter{Types: types, PartyID: "all"}, report.TypeInvoices)
		assert.Len(t, v.Rows, 3, "%v", types)
	}
}

func TestInvoices_FiltrosCombinados(t *testing.T) {
	v := aggregate(t, report.Filter{Types: map[string]string{
		report.KeyInvoiceType:   "sale",
		report.KeyPaymentStatus: "unpaid",
	}}, report.TypeInvoices)
	assert.Equal(t, []string{"i1"}, ids(t, v.Rows))

	v = aggregate(t, report.Filter{PartyID: "v1"}, report.TypeInvoices)
	assert.Equal(t, []string{"p1"}, ids(t, v.Rows))
}

func TestInvoices_Rango(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 1, 31)
	v := aggregate(t, report.Filter{Range: daterange.Range{Start: &start, End: &end}}, report.TypeInvoices)
	assert.Equal(t, []string{"i2"}, ids(t, v.Rows))
	assert.Equal(t, &start, v.Range.Start)
}

func TestInvoices_OrdenPorFecha(t *testing.T) {
	v := aggregate(t, report.Filter{Sort: "date_desc"}, report.TypeInvoices)
	assert.Equal(t, []string{"p1", "i2", "i1"}, ids(t, v.Rows))

	v = aggregate(t, report.Filter{Sort: "nonsense"}, report.TypeInvoices)
	assert.Equal(t, []string{"i1", "i2", "p1"}, ids(t, v.Rows))
}

// ── Parties ──────────────────────────────────────────────────────────────────

// El saldo de cada contraparte es el mismo que en outstanding, aunque el rango excluya todo.
func TestParties_UsaSaldoActual(t *testing.T) {
	start, end := date(2030, 1, 1), date(2030, 1, 31)
	v := aggregate(t, report.Filter{Range: daterange.Range{Start: &start, End: &end}}, report.TypeParties)
	require.Len(t, v.Rows, 2)

	c1 := v.Rows[0].(report.PartyRow)
	assertDec(t, "60", c1.Outstanding)
	v1 := v.Rows[1].(report.PartyRow)
	assertDec(t, "130", v1.Outstanding)

	assertDec(t, "190", v.Summary.Totals["total_outstanding"])
	assert.Equal(t, 1, v.Summary.Counts["customers"])
	assert.Equal(t, 1, v.Summary.Counts["vendors"])
}

// ── Transactions ─────────────────────────────────────────────────────────────

func TestTransactions_Totales(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeTransactions)
	assertDec(t, "30", v.Summary.Totals["total_credit"])
	assertDec(t, "50", v.Summary.Totals["total_debit"])
	assertDec(t, "-20", v.Summary.Totals["net_balance"])
	assert.Equal(t, 3, v.Summary.Counts["transactions"])

	v = aggregate(t, report.Filter{Types: map[string]string{report.KeyCategory: "rent"}}, report.TypeTransactions)
	assert.Equal(t, []string{"t3"}, ids(t, v.Rows))
}

// amount_desc es estable: t1 y t3 empatan en 30 y conservan el orden de entrada.
func TestTransactions_OrdenEstable(t *testing.T) {
	v := aggregate(t, report.Filter{Sort: report.SortAmountDesc}, report.TypeTransactions)
	assert.Equal(t, []string{"t1", "t3", "t2"}, ids(t, v.Rows))
}

// outstanding_desc no aplica a transacciones: el orden no cambia.
func TestTransactions_OrdenPorSaldoEsNoOp(t *testing.T) {
	v := aggregate(t, report.Filter{Sort: report.SortOutstandingDesc}, report.TypeTransactions)
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(t, v.Rows))
}

// ── Inventory ────────────────────────────────────────────────────────────────

func TestInventory_EntradasYSalidas(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeInventory)
	assert.Equal(t, 10, v.Summary.Counts["qty_in"])
	assert.Equal(t, 5, v.Summary.Counts["qty_out"])
	assert.Equal(t, 3, v.Summary.Counts["movements"])
	assertDec(t, "2.5", v.Summary.Totals["weight_in"])
	assertDec(t, "1", v.Summary.Totals["weight_out"])

	v = aggregate(t, report.Filter{Types: map[string]string{report.KeyCategory: "Silver"}}, report.TypeInventory)
	assert.Equal(t, []string{"m3"}, ids(t, v.Rows))
	assert.Equal(t, 0, v.Summary.Counts["qty_in"])
	assert.Equal(t, 1, v.Summary.Counts["qty_out"])
}

// ── Financial summary ────────────────────────────────────────────────────────

func TestFinancialSummary(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeFinancialSummary)
	tot := v.Summary.Totals

	assertDec(t, "150", tot["total_sales"])
	assertDec(t, "200", tot["total_purchases"])
	assertDec(t, "-50", tot["net_profit"])
	assertDec(t, "60", tot["customer_due"])
	assertDec(t, "130", tot["vendor_payable"])
	assertDec(t, "190", tot["total_outstanding"])
	assertDec(t, "500", tot["cash_balance"])
	assertDec(t, "1000", tot["bank_balance"])
	assertDec(t, "30", tot["total_credit"])
	assertDec(t, "50", tot["total_debit"])
	assertDec(t, "-20", tot["net_flow"])
	assertDec(t, "-2", tot["daily_closing_difference"])
	assert.Empty(t, v.Rows)
}

// Los filtros por tipo no afectan al resumen; el rango sí.
func TestFinancialSummary_IgnoraFiltrosDeTipo(t *testing.T) {
	plain := aggregate(t, report.Filter{}, report.TypeFinancialSummary)
	typed := aggregate(t, report.Filter{Types: map[string]string{report.KeyInvoiceType: "purchase"}}, report.TypeFinancialSummary)
	assert.Equal(t, plain.Summary, typed.Summary)

	start, end := date(2024, 2, 1), date(2024, 2, 12)
	ranged := aggregate(t, report.Filter{Range: daterange.Range{Start: &start, End: &end}}, report.TypeFinancialSummary)
	assertDec(t, "0", ranged.Summary.Totals["total_sales"])
	assertDec(t, "200", ranged.Summary.Totals["total_purchases"])
	assertDec(t, "5", ranged.Summary.Totals["daily_closing_difference"])
}

// ── Determinismo ─────────────────────────────────────────────────────────────

func TestAggregate_Idempotente(t *testing.T) {
	for _, typ := range []report.Type{
		report.TypeOutstanding, report.TypeInvoices, report.TypeParties,
		report.TypeTransactions, report.TypeInventory, report.TypeFinancialSummary,
	} {
		f := report.Filter{AsOf: asOf, Sort: report.SortAmountDesc}
		a, err := report.Aggregate(fixture(), f, typ)
		require.NoError(t, err)
		b, err := report.Aggregate(fixture(), f, typ)
		require.NoError(t, err)

		ja, err := json.Marshal(a)
		require.NoError(t, err)
		jb, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, string(ja), string(jb), typ)
	}
}

// Los montos salen como string con 3 decimales, igual que en los cierres.
func TestView_JSONConEscalaFija(t *testing.T) {
	v := aggregate(t, report.Filter{}, report.TypeOutstanding)
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out struct {
		Summary struct {
			Totals map[string]string `json:"totals"`
			Counts map[string]int    `json:"counts"`
		} `json:"summary"`
		Rows []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "190.000", out.Summary.Totals["total_outstanding"])
	assert.Equal(t, "0.000", out.Summary.Totals["bucket_8_30"])
	assert.Equal(t, 2, out.Summary.Counts["parties"])

	require.Len(t, out.Rows, 2)
	c1 := out.Rows[0]
	assert.Equal(t, "c1", c1["party_id"])
	assert.Equal(t, "150.000", c1["total_invoiced"])
	assert.Equal(t, "60.000", c1["total_outstanding"])
	assert.Equal(t, "60.000", c1["bucket_31_plus"])
	assert.Equal(t, "0.000", c1["bucket_0_7"])

	inv := aggregate(t, report.Filter{}, report.TypeInvoices)
	raw, err = json.Marshal(inv)
	require.NoError(t, err)
	var invOut struct {
		Rows      []map[string]interface{} `json:"rows"`
		Anomalies []map[string]interface{} `json:"anomalies"`
	}
	require.NoError(t, json.Unmarshal(raw, &invOut))
	assert.Equal(t, "100.000", invOut.Rows[0]["grand_total"])
	require.Len(t, invOut.Anomalies, 1)
	assert.Equal(t, "-10.000", invOut.Anomalies[0]["value"])

	mov := aggregate(t, report.Filter{}, report.TypeInventory)
	raw, err = json.Marshal(mov)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"weight_delta":"2.500"`)
}

func TestAggregate_NoModificaElSnapshot(t *testing.T) {
	rs := fixture()
	_, err := report.Aggregate(rs, report.Filter{AsOf: asOf, Sort: report.SortDateDesc}, report.TypeInvoices)
	require.NoError(t, err)
	assert.Equal(t, fixture(), rs)
}
