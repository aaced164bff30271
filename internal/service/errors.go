package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is returned when a catalog entry with the same name exists
var ErrConflict = errors.New("already exists")

// FieldError describes one invalid input field
type FieldError struct {
	Field   string
	Message string
	Code    string
}

// ValidationError collects every invalid field of a request
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message, code string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Code: code})
}

// errOrNil returns e when it holds any field errors
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err is a *ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
