// Package access evalúa permisos de un Principal contra una expresión requerida.
//
// Es el único punto donde se decide el acceso: los handlers, los middlewares y los casos de uso
// llaman a Authorize y nunca comparan roles por su cuenta. El rol admin satisface cualquier
// expresión y se evalúa antes de mirar el conjunto explícito de permisos.
package access

import "strings"

// Role rol del usuario dentro del negocio.
type Role string

// Roles válidos.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// ParseRole normaliza el rol; un valor desconocido devuelve "" (nunca admin).
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	case RoleStaff:
		return RoleStaff
	default:
		return ""
	}
}

// Principal identidad autorizada de una petición. Inmutable después de NewPrincipal.
type Principal struct {
	userID      string
	role        Role
	permissions map[string]struct{}
}

// NewPrincipal construye el Principal copiando los permisos a un set propio.
func NewPrincipal(userID string, role Role, permissions ...string) *Principal {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return &Principal{userID: userID, role: role, permissions: set}
}

// UserID identificador del usuario (para auditoría, p. ej. CreatedBy del cierre).
func (p *Principal) UserID() string {
	if p == nil {
		return ""
	}
	return p.userID
}

// Role rol del principal.
func (p *Principal) Role() Role {
	if p == nil {
		return ""
	}
	return p.role
}

// Has informa si el permiso está en el set explícito (sin aplicar el override de admin).
func (p *Principal) Has(permission string) bool {
	if p == nil {
		return false
	}
	_, ok := p.permissions[permission]
	return ok
}

// exprKind tipo de expresión de permisos.
type exprKind uint8

const (
	kindNone exprKind = iota
	kindSingle
	kindAnyOf
	kindAllOf
)

// Expression permiso requerido: Single, AnyOf o AllOf.
// El valor cero no autoriza a nadie salvo admin.
type Expression struct {
	kind  exprKind
	perms []string
}

// Single requiere exactamente ese permiso.
func Single(perm string) Expression {
	return Expression{kind: kindSingle, perms: []string{perm}}
}

// AnyOf requiere al menos uno de los permisos. Sin operandos no autoriza.
func AnyOf(perms ...string) Expression {
	return Expression{kind: kindAnyOf, perms: append([]string(nil), perms...)}
}

// AllOf requiere todos los permisos. Sin operandos autoriza a cualquier principal autenticado.
func AllOf(perms ...string) Expression {
	return Expression{kind: kindAllOf, perms: append([]string(nil), perms...)}
}

// String representación legible para logs ("anyOf(reports.view,finance.view)").
func (e Expression) String() string {
	joined := strings.Join(e.perms, ",")
	switch e.kind {
	case kindSingle:
		return joined
	case kindAnyOf:
		return "anyOf(" + joined + ")"
	case kindAllOf:
		return "allOf(" + joined + ")"
	default:
		return "none"
	}
}

// Authorize devuelve true si el principal satisface la expresión.
// Sin principal (no autenticado) siempre es false.
func Authorize(p *Principal, e Expression) bool {
	if p == nil {
		return false
	}
	if p.role == RoleAdmin {
		return true
	}
	switch e.kind {
	case kindSingle:
		return p.Has(e.perms[0])
	case kindAnyOf:
		for _, perm := range e.perms {
			if p.Has(perm) {
				return true
			}
		}
		return false
	case kindAllOf:
		for _, perm := range e.perms {
			if !p.Has(perm) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
