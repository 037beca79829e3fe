package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// CEP with the hyphen already stripped
	cepRegex = regexp.MustCompile(`^[0-9]{8}$`)

	// E164-like phone: optional +, digits 8-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("cep", ValidCEP)
	_ = v.RegisterValidation("phone", ValidPhone)
}

// ValidCEP validates an 8-digit Brazilian postal code
func ValidCEP(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return cepRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
