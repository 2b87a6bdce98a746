package entity

import "github.com/shopspring/decimal"

// Account cuenta de caja o banco con su saldo actual.
type Account struct {
	ID          string
	Name        string
	AccountType string
	Balance     decimal.Decimal
}
