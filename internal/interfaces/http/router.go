package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/finance"
	"github.com/jhoicas/ledger-api/internal/application/reports"
	"github.com/jhoicas/ledger-api/internal/application/validation"
	"github.com/jhoicas/ledger-api/internal/domain/access"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *reports.ReportUseCase
	ClosingUC *finance.ClosingUseCase
	Validator *validation.Validator
	Log       *logger.Logger
	JWTSecret string
}

// reportViewers cualquiera que pueda ver al menos un reporte. El permiso exacto lo decide el caso de uso.
var reportViewers = access.AnyOf(
	access.PermReportsView, access.PermFinanceView, access.PermInvoicesView,
	access.PermPartiesView, access.PermInventoryView,
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, deps.Validator, log)
	api.Get("/reports/:type", RequirePermission(reportViewers), reportHandler.Generate)

	// Cierres diarios
	closings := api.Group("/closings")
	closingHandler := NewClosingHandler(deps.ClosingUC, log)
	closings.Get("/:date", RequirePermission(access.CanViewClosing), closingHandler.Get)
	closings.Post("/", RequirePermission(access.CanReconcileClosing), closingHandler.Reconcile)
	closings.Post("/:date/lock", RequirePermission(access.CanLockClosing), closingHandler.Lock)
}
