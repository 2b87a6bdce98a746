package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
	MovementTypeSale       = "sale"
	MovementTypePurchase   = "purchase"
	MovementTypeReturn     = "return"
)

// InventoryMovement movimiento de stock de un ítem.
// QtyDelta y WeightDelta llevan signo: positivo entrada, negativo salida.
type InventoryMovement struct {
	ID           string
	ItemID       string
	ItemName     string
	Category     string
	MovementType string
	QtyDelta     int64
	WeightDelta  decimal.Decimal // gramos, 3 decimales
	Reference    string          // factura u orden de trabajo que lo originó
	Date         time.Time
}
