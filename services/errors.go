// File: /services/errors.go
package services

import (
	"errors"
)

// Error kinds. Callers match them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// ServiceError carries a message that is safe to show to API clients.
type ServiceError struct {
	Kind    error
	Message string
	cause   error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}

// Cause returns the underlying storage error, if any.
func (e *ServiceError) Cause() error {
	return e.cause
}

func validationError(message string) error {
	return &ServiceError{Kind: ErrValidation, Message: message}
}

func notFoundError(message string) error {
	return &ServiceError{Kind: ErrNotFound, Message: message}
}

func forbiddenError(message string) error {
	return &ServiceError{Kind: ErrForbidden, Message: message}
}

func conflictError(message string) error {
	return &ServiceError{Kind: ErrConflict, Message: message}
}

func unauthorizedError(message string) error {
	return &ServiceError{Kind: ErrUnauthorized, Message: message}
}

func internalError(message string, cause error) error {
	return &ServiceError{Kind: ErrInternal, Message: message, cause: cause}
}
