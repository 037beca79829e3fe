package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":                 "Name",
	"BirthDate":            "Birth date",
	"Email":                "Email",
	"Phone":                "Phone number",
	"Password":             "Password",
	"PasswordConfirmation": "Password confirmation",
	"CEP":                  "Postal code",
	"Address":              "Address",
	"City":                 "City",
	"State":                "State",
	"Role":                 "Role",
	"SkillIDs":             "Skills",
	"Educations":           "Educations",
	"CourseName":           "Course name",
	"Institution":          "Institution",
	"ConcludedAt":          "Conclusion date",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "eqfield":
		return fmt.Sprintf("%s: Must match %s", label, getFieldLabel(param))

	case "datetime":
		return fmt.Sprintf("%s: Must be a valid date in YYYY-MM-DD format", label)

	case "cep":
		return fmt.Sprintf("%s: Must contain exactly 8 digits", label)

	case "phone":
		return fmt.Sprintf("%s: Invalid phone format (8-15 digits, with/without +)", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
