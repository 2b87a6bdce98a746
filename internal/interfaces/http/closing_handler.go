package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/application/finance"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// ClosingHandler maneja las peticiones HTTP del cierre de caja diario (protegido).
type ClosingHandler struct {
	uc  *finance.ClosingUseCase
	log *logger.Logger
}

// NewClosingHandler construye el handler.
func NewClosingHandler(uc *finance.ClosingUseCase, log *logger.Logger) *ClosingHandler {
	return &ClosingHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Consultar cierre diario
// @Tags         closings
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.ClosingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/closings/{date} [get]
func (h *ClosingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("date"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Conciliar el efectivo del día
// @Description  expected = opening + credit − debit; difference = actual − expected. Sin opening_cash se usa el cierre anterior.
// @Tags         closings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "date, actual_closing y montos opcionales"
// @Success      200  {object}  dto.ClosingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/closings [post]
func (h *ClosingHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reconcile(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Lock godoc
// @Summary      Bloquear cierre diario
// @Description  Irreversible. Un cierre bloqueado ya no puede recalcularse.
// @Tags         closings
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.ClosingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/closings/{date}/lock [post]
func (h *ClosingHandler) Lock(c *fiber.Ctx) error {
	out, err := h.uc.Lock(c.UserContext(), GetPrincipal(c), c.Params("date"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
