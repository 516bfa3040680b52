// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"holocron/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator. Field errors are reported by their JSON names.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json tags.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, fieldErr.Param())
	case "min", "gte", "gt":
		return fmt.Sprintf("%s must be at least %s", field, minimum(fieldErr))
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}

// minimum turns gt=0 into "1" so the message reads naturally for integers.
func minimum(fieldErr validator.FieldError) string {
	if fieldErr.Tag() == "gt" && fieldErr.Param() == "0" {
		return "1"
	}

	return fieldErr.Param()
}
