package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagLogPrefix validates a period-file name prefix: non-empty, no path separators, not a dotfile.
const TagLogPrefix = "logprefix"

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagLogPrefix, validateLogPrefix)
	return validate
}

func validateLogPrefix(fl validator.FieldLevel) bool {
	prefix := fl.Field().String()
	if prefix == "" || strings.HasPrefix(prefix, ".") {
		return false
	}
	return !strings.ContainsAny(prefix, `/\`)
}
