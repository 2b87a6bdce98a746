// Package money reúne las reglas de precisión fija del ledger: montos en OMR y pesos en gramos,
// ambos con exactamente 3 decimales.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale cantidad de decimales de montos (baisa) y pesos (miligramos).
const Scale int32 = 3

// Parse convierte un string en decimal rechazando más de 3 decimales.
// No redondea: un monto con 4 decimales es un error de entrada, no algo a corregir en silencio.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("money: monto vacío")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: %q no es un monto válido: %w", s, err)
	}
	if !HasScale(d) {
		return decimal.Zero, fmt.Errorf("money: %q tiene más de %d decimales", s, Scale)
	}
	return d, nil
}

// HasScale informa si d se representa sin pérdida con 3 decimales.
func HasScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// String formatea con 3 decimales fijos ("130.000").
func String(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
