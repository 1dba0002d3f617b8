package domain

import (
	"fmt"
	"net/http"
)

// AppError is the error taxonomy crossing the service boundary: validation
// failures carry the full field-error list (400), missing references map to
// 404, anything else surfaces as a plain 500 with no internals attached.
type AppError struct {
	Status  int
	Message string
	Details []string
}

func (e *AppError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

func NewValidationError(msg string, details []string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: msg, Details: details}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: msg}
}
