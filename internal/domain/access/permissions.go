package access

// Catálogo de permisos "<módulo>.<acción>". El modelo los trata como tokens opacos;
// los define el colaborador de control de acceso y aquí solo se nombran los que se consumen.
const (
	PermInventoryView = "inventory.view"
	PermJobCardsView  = "jobcards.view"
	PermInvoicesView  = "invoices.view"
	PermPartiesView   = "parties.view"
	PermPurchasesView = "purchases.view"
	PermReturnsView   = "returns.view"
	PermFinanceView   = "finance.view"
	PermReportsView   = "reports.view"
	PermAuditView     = "audit.view"

	PermFinanceCreate = "finance.create" // conciliar un día
	PermFinanceLock   = "finance.lock"   // bloquear un cierre (irreversible)
)

// Expresiones requeridas por las operaciones de cierre diario.
var (
	CanViewClosing      = Single(PermFinanceView)
	CanReconcileClosing = Single(PermFinanceCreate)
	CanLockClosing      = Single(PermFinanceLock)
)
