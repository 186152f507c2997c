// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"vplmon/internal/domain/entity"
	"vplmon/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the recipient tags used by the dashboard API.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(entity.NormalizePhone(fl.Field().String()))
	})
	_ = v.RegisterValidation("recipient_email", func(fl validator.FieldLevel) bool {
		return entity.IsValidEmail(entity.NormalizeEmail(fl.Field().String()))
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// FieldErrors maps each failing field to the tag it failed. ok is false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}

	return fields, true
}
