package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/application/validation"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// errorStatus traduce un error de dominio a status y código HTTP.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrLockedRecord):
		return fiber.StatusConflict, "LOCKED_RECORD"
	case errors.Is(err, domain.ErrUnknownReport):
		return fiber.StatusNotFound, "UNKNOWN_REPORT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con dto.ErrorResponse. Los 500 se loguean y no exponen el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := errorStatus(err)
	body := dto.ErrorResponse{Code: code, Message: err.Error(), Fields: validation.FieldsOf(err)}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		body.Message = "error interno"
	}
	return c.Status(status).JSON(body)
}
