// Package validation envuelve go-playground/validator con las reglas propias del ledger:
// montos OMR de 3 decimales (tag omr) y nombres de trabajador (tag worker_name).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/money"
)

// Validator valida DTOs de entrada. Es seguro para uso concurrente.
type Validator struct {
	v *validator.Validate
}

// New registra las reglas propias y usa el nombre JSON (o query) del campo en los errores.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("omr", validateOMR)
	_ = v.RegisterValidation("worker_name", validateWorkerName)
	return &Validator{v: v}
}

// Struct valida s. Los errores de validación se devuelven como *Error (envuelve ErrInvalidInput).
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	return &Error{Fields: formatFieldErrors(verrs)}
}

// Error conjunto de campos inválidos.
type Error struct {
	Fields []dto.FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// FieldsOf devuelve el detalle por campo si err es un error de validación.
func FieldsOf(err error) []dto.FieldError {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

func formatFieldErrors(verrs validator.ValidationErrors) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s es obligatorio", fe.Field())
		case "max":
			msg = fmt.Sprintf("%s admite como máximo %s caracteres", fe.Field(), fe.Param())
		case "datetime":
			msg = fmt.Sprintf("%s debe tener formato AAAA-MM-DD", fe.Field())
		case "omr":
			msg = fmt.Sprintf("%s debe ser un monto con hasta %d decimales", fe.Field(), money.Scale)
		case "worker_name":
			msg = fmt.Sprintf("%s debe tener entre %d y %d letras o espacios", fe.Field(), entity.WorkerNameMinLen, entity.WorkerNameMaxLen)
		default:
			msg = fmt.Sprintf("%s no es válido", fe.Field())
		}
		out = append(out, dto.FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: msg})
	}
	return out
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validateOMR(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := money.Parse(fl.Field().String())
	return err == nil
}

func validateWorkerName(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return entity.ValidateWorkerName(fl.Field().String()) == nil
}
