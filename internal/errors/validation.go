package errors

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ValidationError collects validation failures keyed by field name
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface. Fields are listed in name order so the
// message is stable.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
	}
}

// AddFieldError adds an error for a specific field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the validation error to an InvalidArgument error
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}

	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field errors and builds a single
// InvalidArgument error, or nil when nothing was reported.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: NewValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// ValidateRequired checks that a string field is not blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateFinite checks that a numeric field is neither NaN nor infinite
func ValidateFinite(field string, value float64, vb *ValidationBuilder) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		vb.Fieldf(field, "must be a finite number, got %g", value)
		return false
	}
	return true
}

// ValidateNonNegative checks that a numeric field is finite and zero or greater
func ValidateNonNegative(field string, value float64, vb *ValidationBuilder) {
	if !ValidateFinite(field, value, vb) {
		return
	}
	if value < 0 {
		vb.Fieldf(field, "must not be negative, got %g", value)
	}
}

// ValidatePositive checks that a numeric field is finite and strictly greater
// than zero
func ValidatePositive(field string, value float64, vb *ValidationBuilder) {
	if !ValidateFinite(field, value, vb) {
		return
	}
	if value <= 0 {
		vb.Fieldf(field, "must be positive, got %g", value)
	}
}

// ValidateFraction checks that a numeric field lies in [0, 1]
func ValidateFraction(field string, value float64, vb *ValidationBuilder) {
	if !ValidateFinite(field, value, vb) {
		return
	}
	if value < 0 || value > 1 {
		vb.Fieldf(field, "must be between 0 and 1, got %g", value)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
