package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"quizmaster/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs using their `validate` struct tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in reported
// errors follow the json tag of the field.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct returns domain.ValidationErrors describing every failed field, or
// nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("request validation failed", err)
	}

	result := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, toValidationError(fe))
	}
	return result
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "datetime", "numeric":
		return domain.NewInvalidFormatError(field, fe.Value())
	case "oneof":
		ve := domain.NewFieldError(field, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		ve.Value = fe.Value()
		return ve
	case "min":
		return domain.NewFieldError(field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "max":
		return domain.NewFieldError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	default:
		return domain.NewFieldError(field, fmt.Sprintf("%s failed the %s check", field, fe.Tag()))
	}
}
