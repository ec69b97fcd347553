package services

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for service-level input checks.
// The DB constraints remain the authoritative guarantee for uniqueness;
// these checks exist to fail early with friendly messages.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// personnummer: exactly 11 digits
	_ = v.RegisterValidation("personnummer", func(fl validator.FieldLevel) bool {
		return ValidPersonnummer(fl.Field().String())
	})

	return v
}
