package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/ledger-api/internal/domain"
)

// Límites del nombre de un trabajador (sobre el valor ya recortado).
const (
	WorkerNameMinLen = 3
	WorkerNameMaxLen = 50
)

var workerNameRegex = regexp.MustCompile(`^[A-Za-z ]+$`)

// ValidateWorkerName aplica la regla de nombre de un trabajador del taller: no vacío tras recortar, entre 3 y 50 caracteres,
// solo letras latinas y espacios.
func ValidateWorkerName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case len(trimmed) < WorkerNameMinLen || len(trimmed) > WorkerNameMaxLen:
		return fmt.Errorf("%w: el nombre debe tener entre %d y %d caracteres", domain.ErrInvalidInput, WorkerNameMinLen, WorkerNameMaxLen)
	case !workerNameRegex.MatchString(trimmed):
		return fmt.Errorf("%w: el nombre solo admite letras y espacios", domain.ErrInvalidInput)
	}
	return nil
}
