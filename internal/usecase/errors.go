package usecase

import (
	"errors"
	"fmt"

	"order-management/pkg/utils"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrWrongRole          = errors.New("role not allowed")
	ErrNoRole             = errors.New("principal has no role assigned")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("account is deactivated")
)

// ValidationError carries field-level messages for a rejected form. Fields
// are keyed by form input name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func fieldError(field, message string) *ValidationError {
	return newValidationError(map[string]string{field: message})
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
