package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción (sentido del movimiento de dinero en la cuenta).
const (
	TransactionTypeCredit = "credit" // entra dinero
	TransactionTypeDebit  = "debit"  // sale dinero
)

// Tipos de cuenta.
const (
	AccountTypeCash = "cash"
	AccountTypeBank = "bank"
)

// Transaction movimiento de dinero en una cuenta de caja o banco.
// PartyID e InvoiceID son opcionales: un pago sin factura es un pago a cuenta de la contraparte.
type Transaction struct {
	ID              string
	PartyID         string
	InvoiceID       string
	AccountID       string
	AccountType     string // denormalizado desde accounts por el repositorio
	TransactionType string
	Category        string
	Amount          decimal.Decimal // siempre positivo; el signo lo da TransactionType
	Description     string
	Date            time.Time
}

// Signed devuelve el monto con signo: crédito positivo, débito negativo.
func (t *Transaction) Signed() decimal.Decimal {
	if t.TransactionType == TransactionTypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
