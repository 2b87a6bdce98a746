package entity

import "time"

// Tipos de contraparte.
const (
	PartyTypeCustomer = "customer"
	PartyTypeVendor   = "vendor"
)

// Party cliente o proveedor con el que se factura.
type Party struct {
	ID        string
	Name      string
	PartyType string
	Phone     string
	CreatedAt time.Time
}
