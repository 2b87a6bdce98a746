package dto

import "github.com/jhoicas/ledger-api/internal/domain/report"

// ReportRequest parámetros de consulta de GET /api/reports/:type.
// Los filtros vacíos o "all" no restringen. Una fecha ilegible deja abierto ese extremo.
type ReportRequest struct {
	Preset    string `query:"preset"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	PartyID   string `query:"party_id" validate:"max=64"`
	Sort      string `query:"sort"`

	InvoiceType     string `query:"invoice_type"`
	PaymentStatus   string `query:"payment_status"`
	PartyType       string `query:"party_type"`
	TransactionType string `query:"transaction_type"`
	MovementType    string `query:"movement_type"`
	Category        string `query:"category" validate:"max=64"`
}

// Types filtros por tipo con las claves que entiende el agregador.
func (r ReportRequest) Types() map[string]string {
	out := make(map[string]string, 6)
	for k, v := range map[string]string{
		report.KeyInvoiceType:     r.InvoiceType,
		report.KeyPaymentStatus:   r.PaymentStatus,
		report.KeyPartyType:       r.PartyType,
		report.KeyTransactionType: r.TransactionType,
		report.KeyMovementType:    r.MovementType,
		report.KeyCategory:        r.Category,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
