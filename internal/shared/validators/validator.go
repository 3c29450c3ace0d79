package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// shared caches struct metadata across calls; validator.Validate is safe for concurrent use.
var shared = validator.New()

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Struct validates s with the shared validator instance.
// Use it on hot paths (per parsed log line) where building a validator each call is too costly.
func Struct(s any) error {
	return shared.Struct(s)
}
