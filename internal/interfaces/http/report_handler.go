package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/application/reports"
	"github.com/jhoicas/ledger-api/internal/application/validation"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// ReportHandler maneja GET /api/reports/:type.
type ReportHandler struct {
	uc       *reports.ReportUseCase
	validate *validation.Validator
	log      *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, validate *validation.Validator, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, validate: validate, log: log}
}

// Generate godoc
// @Summary      Generar reporte
// @Description  outstanding, invoices, parties, transactions, inventory o financial_summary. Los filtros vacíos o "all" no restringen.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type              path   string  true   "tipo de reporte"
// @Param        preset            query  string  false  "all|today|yesterday|this_week|this_month|custom"
// @Param        start_date        query  string  false  "YYYY-MM-DD (custom)"
// @Param        end_date          query  string  false  "YYYY-MM-DD (custom)"
// @Param        party_id          query  string  false  "contraparte"
// @Param        sort              query  string  false  "date_desc|date_asc|amount_desc|outstanding_desc"
// @Param        invoice_type      query  string  false  "sale|purchase"
// @Param        payment_status    query  string  false  "unpaid|partial|paid"
// @Param        party_type        query  string  false  "customer|vendor"
// @Param        transaction_type  query  string  false  "credit|debit"
// @Param        movement_type     query  string  false  "in|out|adjustment|sale|purchase|return"
// @Param        category          query  string  false  "categoría"
// @Success      200  {object}  report.View
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{type} [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, h.log, err)
	}

	view, err := h.uc.Generate(c.UserContext(), GetPrincipal(c), c.Params("type"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(view)
}
