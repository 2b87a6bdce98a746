package report

import (
	"strings"
	"time"

	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// SortKey criterio de orden de filas.
type SortKey string

// Criterios soportados. Cualquier otro valor deja el orden de entrada.
const (
	SortDateDesc        SortKey = "date_desc"
	SortDateAsc         SortKey = "date_asc"
	SortAmountDesc      SortKey = "amount_desc"
	SortOutstandingDesc SortKey = "outstanding_desc"
)

// ParseSort normaliza el criterio; desconocido devuelve "" (no-op).
func ParseSort(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortOutstandingDesc:
		return k
	default:
		return ""
	}
}

// Claves de filtro por tipo.
const (
	KeyInvoiceType     = "invoice_type"
	KeyPaymentStatus   = "payment_status"
	KeyPartyType       = "party_type"
	KeyTransactionType = "transaction_type"
	KeyMovementType    = "movement_type"
	KeyCategory        = "category"
)

// All valor centinela que equivale a "sin restricción".
const All = "all"

// enumerations valores conocidos por clave. Las claves ausentes (category) son texto libre.
var enumerations = map[string][]string{
	KeyInvoiceType:     {entity.InvoiceTypeSale, entity.InvoiceTypePurchase},
	KeyPaymentStatus:   {entity.PaymentStatusUnpaid, entity.PaymentStatusPartial, entity.PaymentStatusPaid},
	KeyPartyType:       {entity.PartyTypeCustomer, entity.PartyTypeVendor},
	KeyTransactionType: {entity.TransactionTypeCredit, entity.TransactionTypeDebit},
	KeyMovementType: {
		entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjustment,
		entity.MovementTypeSale, entity.MovementTypePurchase, entity.MovementTypeReturn,
	},
}

// Filter criterios del reporte.
// AsOf es la fecha de referencia del aging (el "hoy" de la petición).
type Filter struct {
	Range   daterange.Range
	PartyID string
	Sort    SortKey
	Types   map[string]string
	AsOf    time.Time
}

// normalized devuelve una copia donde los valores vacíos, "all" o fuera de la enumeración
// conocida desaparecen: ausencia de filtro nunca significa "no coincide nada".
func (f Filter) normalized() Filter {
	out := f
	out.PartyID = strings.TrimSpace(f.PartyID)
	if strings.EqualFold(out.PartyID, All) {
		out.PartyID = ""
	}
	out.Sort = ParseSort(string(f.Sort))
	out.Types = make(map[string]string, len(f.Types))
	for k, v := range f.Types {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, All) {
			continue
		}
		if known, ok := enumerations[k]; ok {
			v = strings.ToLower(v)
			if !contains(known, v) {
				continue
			}
		}
		out.Types[k] = v
	}
	return out
}

// match informa si got pasa el filtro key.
func (f Filter) match(key, got string) bool {
	want, ok := f.Types[key]
	if !ok {
		return true
	}
	return strings.EqualFold(want, got)
}

func (f Filter) matchParty(partyID string) bool {
	return f.PartyID == "" || f.PartyID == partyID
}

// withoutTypes copia del filtro sin filtros por tipo (para sub-reportes del resumen).
func (f Filter) withoutTypes() Filter {
	out := f
	out.Types = map[string]string{}
	return out
}

// unbounded copia sin rango ni contraparte: saldo "actual" de cada contraparte.
func (f Filter) unbounded() Filter {
	out := f.withoutTypes()
	out.Range = daterange.Range{}
	out.PartyID = ""
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
