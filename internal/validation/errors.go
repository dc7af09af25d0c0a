package validation

import (
	"sort"
	"strings"
)

// Сообщения об ошибках валидации полей
const (
	msgRequired        = "Missing data for required field."
	msgFullnameTooLong = "Longer than maximum length 50."
	msgFullnameLetters = "Fullname must contain only letters and spaces"
	msgDateFormat      = "Invalid date format. Use YYYY-MM-DD."
	msgNotANumber      = "Not a valid number."
	msgNotAString      = "Not a valid string."
	msgPriceNegative   = "Must be greater than or equal to 0."
	msgDocumentLength  = "Length must be 10."
	msgDocumentDigits  = "Document number must be exactly 10 digits"
)

// FieldErrors ошибки валидации: имя поля -> список сообщений
type FieldErrors map[string][]string

// Error implements error
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}
