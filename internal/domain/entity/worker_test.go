package entity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

func TestValidateWorkerName(t *testing.T) {
	valid := []string{"Ali", "Said Al Harthy", "  Maryam  ", strings.Repeat("a", 50)}
	for _, n := range valid {
		assert.NoError(t, entity.ValidateWorkerName(n), "%q debe ser válido", n)
	}

	invalid := []string{
		"",
		"   ",
		"Al",
		strings.Repeat("a", 51),
		"Ali2",
		"O'Brien",
		"Ana-Maria",
		"محمد",
		"José",
	}
	for _, n := range invalid {
		err := entity.ValidateWorkerName(n)
		assert.Error(t, err, "%q debe ser inválido", n)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}
}

func TestInvoice_DueYRawBalance(t *testing.T) {
	inv := entity.Invoice{}
	assert.True(t, inv.Due().IsZero())
	assert.True(t, inv.RawBalance().IsZero())
}
