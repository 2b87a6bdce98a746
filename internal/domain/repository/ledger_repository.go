package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

// Section conjunto de tablas que debe traer un snapshot.
type Section uint8

// Secciones del snapshot.
const (
	SectionInvoices Section = 1 << iota
	SectionTransactions
	SectionMovements
	SectionParties
	SectionAccounts
	SectionClosings

	SectionAll = SectionInvoices | SectionTransactions | SectionMovements |
		SectionParties | SectionAccounts | SectionClosings
)

// Has informa si s incluye o.
func (s Section) Has(o Section) bool { return s&o == o }

// SnapshotQuery qué leer y en qué ventana de fechas.
// Un Range sin extremos trae toda la historia; contrapartes y cuentas nunca se filtran por fecha.
type SnapshotQuery struct {
	Sections Section
	Range    daterange.Range
}

// LedgerReader lectura consistente del ledger. Las implementaciones son read-only.
type LedgerReader interface {
	// Snapshot devuelve todas las secciones pedidas leídas en una misma transacción,
	// de modo que no haya mezcla de estados entre tablas.
	Snapshot(ctx context.Context, q SnapshotQuery) (*report.RecordSet, error)

	// TransactionsOn devuelve las transacciones de cuentas de caja del día.
	TransactionsOn(ctx context.Context, day time.Time) ([]entity.Transaction, error)
}
