// Package validation formats the accepted choices of enumerated settings.
package validation

import "strings"

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// ValidValuesHint returns "Valid: a, b, c".
func ValidValuesHint[T ~string](values []T) string {
	return "Valid: " + FormatValidValues(values)
}
