package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldErrors maps a dotted field name to the problems found with it
type FieldErrors map[string][]string

// Error renders every field in name order so messages are stable across runs.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(f))
	for _, field := range slices.Sorted(maps.Keys(f)) {
		parts = append(parts, field+": "+strings.Join(f[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationBuilder accumulates field problems for an Input or Config. Build returns
// nil when nothing was recorded.
type ValidationBuilder struct {
	fields FieldErrors
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: FieldErrors{}}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns an InvalidArgument error listing every field, with the raw
// FieldErrors under the "validation_errors" meta key.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	return InvalidArgument(vb.fields.Error()).WithMeta("validation_errors", map[string][]string(vb.fields))
}

// ValidateRequired flags blank or whitespace-only values
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

func ValidateMaxLength(field, value string, maxValue int, vb *ValidationBuilder) {
	if len(value) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
}

func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
