package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.LedgerReader = (*LedgerRepo)(nil)

// LedgerRepo lectura del ledger sobre PostgreSQL. Solo lectura.
type LedgerRepo struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewLedgerRepository construye el adaptador. loc es la zona en la que se interpretan las columnas DATE.
func NewLedgerRepository(pool *pgxpool.Pool, loc *time.Location) *LedgerRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &LedgerRepo{pool: pool, loc: loc}
}

// Snapshot lee todas las secciones pedidas en una transacción REPEATABLE READ, READ ONLY:
// facturas y pagos se ven en el mismo estado aunque haya escrituras concurrentes.
func (r *LedgerRepo) Snapshot(ctx context.Context, q repository.SnapshotQuery) (*report.RecordSet, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	from, to := dateParam(q.Range.Start), dateParam(q.Range.End)
	rs := &report.RecordSet{}

	if q.Sections.Has(repository.SectionInvoices) {
		if rs.Invoices, err = r.invoices(ctx, tx, from, to); err != nil {
			return nil, err
		}
	}
	if q.Sections.Has(repository.SectionTransactions) {
		if rs.Transactions, err = r.transactions(ctx, tx, from, to, false); err != nil {
			return nil, err
		}
	}
	if q.Sections.Has(repository.SectionMovements) {
		if rs.Movements, err = r.movements(ctx, tx, from, to); err != nil {
			return nil, err
		}
	}
	if q.Sections.Has(repository.SectionParties) {
		if rs.Parties, err = r.parties(ctx, tx); err != nil {
			return nil, err
		}
	}
	if q.Sections.Has(repository.SectionAccounts) {
		if rs.Accounts, err = r.accounts(ctx, tx); err != nil {
			return nil, err
		}
	}
	if q.Sections.Has(repository.SectionClosings) {
		if rs.Closings, err = listClosings(ctx, tx, r.loc, from, to); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return rs, nil
}

// TransactionsOn transacciones de cuentas de caja del día.
func (r *LedgerRepo) TransactionsOn(ctx context.Context, day time.Time) ([]entity.Transaction, error) {
	d := dateParam(&day)
	return r.transactions(ctx, r.pool, d, d, true)
}

// ── Secciones ────────────────────────────────────────────────────────────────

func (r *LedgerRepo) invoices(ctx context.Context, q Querier, from, to *string) ([]entity.Invoice, error) {
	query := `
		SELECT id, number, party_id, invoice_type, payment_status, date, due_date,
		       grand_total, paid_amount, created_at
		FROM invoices
		WHERE ($1::date IS NULL OR date >= $1::date)
		  AND ($2::date IS NULL OR date <= $2::date)
		ORDER BY date, number, id`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []entity.Invoice
	for rows.Next() {
		var (
			inv     entity.Invoice
			partyID *string
			dueDate *time.Time
		)
		if err := rows.Scan(
			&inv.ID, &inv.Number, &partyID, &inv.InvoiceType, &inv.PaymentStatus, &inv.Date, &dueDate,
			&inv.GrandTotal, &inv.PaidAmount, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.PartyID = derefStr(partyID)
		inv.Date = asDate(inv.Date, r.loc)
		if dueDate != nil {
			inv.DueDate = asDate(*dueDate, r.loc)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) transactions(ctx context.Context, q Querier, from, to *string, cashOnly bool) ([]entity.Transaction, error) {
	query := `
		SELECT t.id, t.party_id, t.invoice_id, t.account_id, a.account_type,
		       t.transaction_type, t.category, t.amount, t.description, t.date
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE ($1::date IS NULL OR t.date >= $1::date)
		  AND ($2::date IS NULL OR t.date <= $2::date)
		  AND (NOT $3 OR a.account_type = 'cash')
		ORDER BY t.date, t.created_at, t.id`
	rows, err := q.Query(ctx, query, from, to, cashOnly)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.Transaction
	for rows.Next() {
		var (
			tx                        entity.Transaction
			partyID, invoiceID, descr *string
		)
		if err := rows.Scan(
			&tx.ID, &partyID, &invoiceID, &tx.AccountID, &tx.AccountType,
			&tx.TransactionType, &tx.Category, &tx.Amount, &descr, &tx.Date,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.PartyID = derefStr(partyID)
		tx.InvoiceID = derefStr(invoiceID)
		tx.Description = derefStr(descr)
		tx.Date = asDate(tx.Date, r.loc)
		list = append(list, tx)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) movements(ctx context.Context, q Querier, from, to *string) ([]entity.InventoryMovement, error) {
	query := `
		SELECT m.id, m.item_id, i.name, i.category, m.movement_type,
		       m.qty_delta, m.weight_delta, m.reference, m.date
		FROM inventory_movements m
		JOIN items i ON i.id = m.item_id
		WHERE ($1::date IS NULL OR m.date >= $1::date)
		  AND ($2::date IS NULL OR m.date <= $2::date)
		ORDER BY m.date, m.created_at, m.id`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryMovement
	for rows.Next() {
		var (
			m   entity.InventoryMovement
			ref *string
		)
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.ItemName, &m.Category, &m.MovementType,
			&m.QtyDelta, &m.WeightDelta, &ref, &m.Date,
		); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		m.Reference = derefStr(ref)
		m.Date = asDate(m.Date, r.loc)
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) parties(ctx context.Context, q Querier) ([]entity.Party, error) {
	rows, err := q.Query(ctx, `
		SELECT id, name, party_type, phone, created_at
		FROM parties ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var list []entity.Party
	for rows.Next() {
		var (
			p     entity.Party
			phone *string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.PartyType, &phone, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		p.Phone = derefStr(phone)
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) accounts(ctx context.Context, q Querier) ([]entity.Account, error) {
	rows, err := q.Query(ctx, `SELECT id, name, account_type, balance FROM accounts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.AccountType, &a.Balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
