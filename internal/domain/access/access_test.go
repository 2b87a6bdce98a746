package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ledger-api/internal/domain/access"
)

// Admin satisface cualquier expresión, incluso con permisos que no existen en ningún set.
func TestAuthorize_AdminSiempreAutorizado(t *testing.T) {
	admin := access.NewPrincipal("u1", access.RoleAdmin)

	exprs := []access.Expression{
		access.Single("nunca.existio"),
		access.AnyOf(),
		access.AnyOf("x.y", "z.w"),
		access.AllOf("a.b", "c.d"),
		{},
	}
	for _, e := range exprs {
		assert.True(t, access.Authorize(admin, e), "admin debe pasar %s", e)
	}
}

func TestAuthorize_SinPrincipal_Deniega(t *testing.T) {
	assert.False(t, access.Authorize(nil, access.Single(access.PermReportsView)))
	assert.False(t, access.Authorize(nil, access.AllOf()))
}

func TestAuthorize_Single(t *testing.T) {
	staff := access.NewPrincipal("u2", access.RoleStaff, access.PermInvoicesView)

	assert.True(t, access.Authorize(staff, access.Single(access.PermInvoicesView)))
	assert.False(t, access.Authorize(staff, access.Single(access.PermFinanceView)))
	// coincidencia literal: sin comodines ni prefijos
	assert.False(t, access.Authorize(staff, access.Single("invoices")))
	assert.False(t, access.Authorize(staff, access.Single("invoices.*")))
}

func TestAuthorize_AnyOfAllOf(t *testing.T) {
	mgr := access.NewPrincipal("u3", access.RoleManager, access.PermReportsView, access.PermInventoryView)

	assert.True(t, access.Authorize(mgr, access.AnyOf(access.PermFinanceView, access.PermReportsView)))
	assert.False(t, access.Authorize(mgr, access.AnyOf(access.PermFinanceView, access.PermAuditView)))
	assert.False(t, access.Authorize(mgr, access.AnyOf()), "AnyOf vacío no autoriza")

	assert.True(t, access.Authorize(mgr, access.AllOf(access.PermReportsView, access.PermInventoryView)))
	assert.False(t, access.Authorize(mgr, access.AllOf(access.PermReportsView, access.PermFinanceView)))
	assert.True(t, access.Authorize(mgr, access.AllOf()), "AllOf vacío es verdadero por vacuidad")
}

func TestAuthorize_ExpresionCero_Deniega(t *testing.T) {
	mgr := access.NewPrincipal("u3", access.RoleManager, access.PermReportsView)
	assert.False(t, access.Authorize(mgr, access.Expression{}))
}

// El set se copia: modificar el slice original no cambia el principal.
func TestNewPrincipal_Inmutable(t *testing.T) {
	perms := []string{access.PermFinanceView}
	p := access.NewPrincipal("u4", access.RoleStaff, perms...)
	perms[0] = access.PermAuditView

	assert.True(t, p.Has(access.PermFinanceView))
	assert.False(t, p.Has(access.PermAuditView))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, access.RoleAdmin, access.ParseRole(" Admin "))
	assert.Equal(t, access.RoleManager, access.ParseRole("manager"))
	assert.Equal(t, access.RoleStaff, access.ParseRole("STAFF"))
	assert.Equal(t, access.Role(""), access.ParseRole("superuser"))
}

func TestExpression_String(t *testing.T) {
	assert.Equal(t, "finance.view", access.Single("finance.view").String())
	assert.Equal(t, "anyOf(a.b,c.d)", access.AnyOf("a.b", "c.d").String())
	assert.Equal(t, "allOf(a.b)", access.AllOf("a.b").String())
	assert.Equal(t, "none", access.Expression{}.String())
}
