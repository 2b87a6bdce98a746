package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura.
const (
	InvoiceTypeSale     = "sale"     // venta a cliente (cuenta por cobrar)
	InvoiceTypePurchase = "purchase" // compra a proveedor (cuenta por pagar)
)

// Estados de pago.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Invoice representa la cabecera de una factura de venta o compra.
// Los montos son OMR con 3 decimales.
type Invoice struct {
	ID            string
	Number        string
	PartyID       string
	InvoiceType   string
	PaymentStatus string
	Date          time.Time
	DueDate       time.Time // cero = vence el mismo día de emisión
	GrandTotal    decimal.Decimal
	PaidAmount    decimal.Decimal
	CreatedAt     time.Time
}

// Due fecha de vencimiento efectiva.
func (i *Invoice) Due() time.Time {
	if i.DueDate.IsZero() {
		return i.Date
	}
	return i.DueDate
}

// RawBalance grand_total − paid_amount sin corregir; negativo indica un pago en exceso.
func (i *Invoice) RawBalance() decimal.Decimal {
	return i.GrandTotal.Sub(i.PaidAmount)
}
