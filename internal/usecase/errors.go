package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers translate these to HTTP codes; everything else is a
// server error with a generic body.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrDomainRule  = errors.New("domain rule violation")
	ErrConflict    = errors.New("conflict")
	ErrIntegration = errors.New("integration failure")
)

// kindError carries a client-facing message while matching its kind through
// errors.Is.
type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }
func (e *kindError) Unwrap() error { return e.kind }

// Validation builds a client error for malformed input.
func Validation(format string, args ...any) error {
	return &kindError{kind: ErrValidation, message: fmt.Sprintf(format, args...)}
}

// NotFound builds a client error for a missing entity.
func NotFound(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}

// DomainRule builds a client error for a violated business rule.
func DomainRule(format string, args ...any) error {
	return &kindError{kind: ErrDomainRule, message: fmt.Sprintf(format, args...)}
}

// Conflict builds a client error for duplicate resources.
func Conflict(format string, args ...any) error {
	return &kindError{kind: ErrConflict, message: fmt.Sprintf(format, args...)}
}
