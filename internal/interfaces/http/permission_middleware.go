package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain/access"
)

// RequirePermission devuelve un middleware Fiber que corta la petición si el Principal no
// satisface required. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalPrincipal).
//
// Comportamiento:
//   - 401 Unauthorized → no hay Principal en el contexto.
//   - 403 Forbidden    → el Principal no cumple la expresión.
//
// Es una barrera gruesa por ruta; los casos de uso vuelven a evaluar el permiso exacto.
func RequirePermission(required access.Expression) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "principal no encontrado en el contexto",
			})
		}
		if !access.Authorize(p, required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere " + required.String(),
			})
		}
		return c.Next()
	}
}
