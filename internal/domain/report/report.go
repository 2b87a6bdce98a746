// Package report es el pipeline de filtrado y agregación que convierte el snapshot del ledger
// (facturas, transacciones, movimientos, contrapartes, cuentas y cierres) en vistas de reporte.
//
// Todo es puro: sin reloj, sin aleatoriedad y sin estado compartido. Para el mismo RecordSet
// y el mismo Filter la vista resultante es idéntica byte a byte al serializarla.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/access"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Type tipo de reporte.
type Type string

// Reportes soportados.
const (
	TypeOutstanding      Type = "outstanding"
	TypeInvoices         Type = "invoices"
	TypeParties          Type = "parties"
	TypeTransactions     Type = "transactions"
	TypeInventory        Type = "inventory"
	TypeFinancialSummary Type = "financial_summary"
)

// ParseType normaliza el token del reporte. Acepta "financial-summary" y "overview" como alias.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")); t {
	case TypeOutstanding, TypeInvoices, TypeParties, TypeTransactions, TypeInventory, TypeFinancialSummary:
		return t, nil
	case "overview":
		return TypeFinancialSummary, nil
	default:
		return "", fmt.Errorf("report %q: %w", s, domain.ErrUnknownReport)
	}
}

// Required expresión de permisos que exige el reporte. Un tipo desconocido exige una
// expresión vacía, que solo admin satisface.
func (t Type) Required() access.Expression {
	switch t {
	case TypeOutstanding:
		return access.AnyOf(access.PermReportsView, access.PermFinanceView)
	case TypeInvoices:
		return access.Single(access.PermInvoicesView)
	case TypeParties:
		return access.Single(access.PermPartiesView)
	case TypeTransactions:
		return access.Single(access.PermFinanceView)
	case TypeInventory:
		return access.Single(access.PermInventoryView)
	case TypeFinancialSummary:
		return access.AllOf(access.PermReportsView, access.PermFinanceView)
	default:
		return access.Expression{}
	}
}

// RecordSet snapshot consistente del ledger que entrega el colaborador de almacenamiento.
// El agregador nunca lo modifica.
type RecordSet struct {
	Invoices     []entity.Invoice
	Transactions []entity.Transaction
	Movements    []entity.InventoryMovement
	Parties      []entity.Party
	Accounts     []entity.Account
	Closings     []entity.DailyClosing
}

// Summary totales (decimales) y conteos (enteros) del reporte.
type Summary struct {
	Totals map[string]decimal.Decimal `json:"totals"`
	Counts map[string]int             `json:"counts"`
}

func newSummary() Summary {
	return Summary{Totals: map[string]decimal.Decimal{}, Counts: map[string]int{}}
}

// Anomaly dato inconsistente que se corrigió localmente sin abortar el reporte.
type Anomaly struct {
	RecordID string          `json:"record_id"`
	Kind     string          `json:"kind"`
	Value    decimal.Decimal `json:"value"`
}

// Tipos de anomalía.
const (
	AnomalyNegativeBalanceDue = "negative_balance_due"
	AnomalyUnknownPartyType   = "unknown_party_type"
)

// View vista de reporte. Se construye por petición y no se modifica después.
type View struct {
	Type      Type            `json:"type"`
	Range     daterange.Range `json:"range"`
	AsOf      time.Time       `json:"as_of"`
	Summary   Summary         `json:"summary"`
	Rows      []Row           `json:"rows"`
	Anomalies []Anomaly       `json:"anomalies"`
}

// Aggregate filtra, ordena y resume rs según f para el reporte t.
// Solo falla ante un tipo de reporte desconocido; filtros u orden inválidos no restringen.
func Aggregate(rs *RecordSet, f Filter, t Type) (*View, error) {
	if rs == nil {
		rs = &RecordSet{}
	}
	f = f.normalized()

	var (
		summary   Summary
		rows      []Row
		anomalies []Anomaly
	)
	switch t {
	case TypeOutstanding:
		summary, rows, anomalies = outstandingView(rs, f)
	case TypeInvoices:
		summary, rows, anomalies = invoicesView(rs, f)
	case TypeParties:
		summary, rows = partiesView(rs, f)
	case TypeTransactions:
		summary, rows = transactionsView(rs, f)
	case TypeInventory:
		summary, rows = inventoryView(rs, f)
	case TypeFinancialSummary:
		summary, anomalies = financialSummary(rs, f)
	default:
		return nil, fmt.Errorf("report %q: %w", t, domain.ErrUnknownReport)
	}

	if rows == nil {
		rows = []Row{}
	}
	if anomalies == nil {
		anomalies = []Anomaly{}
	}
	sortRows(rows, f.Sort)

	return &View{
		Type:      t,
		Range:     f.Range,
		AsOf:      f.AsOf,
		Summary:   summary,
		Rows:      rows,
		Anomalies: anomalies,
	}, nil
}
