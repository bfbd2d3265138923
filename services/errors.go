package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors let handlers map business failures to responses without
// string matching.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidReference = errors.New("referenced resource not found")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrIllegalState     = errors.New("operation not allowed in current state")
	ErrInvalidInput     = errors.New("invalid input")
)

// DomainError wraps a sentinel with a human-readable detail for the caller.
type DomainError struct {
	Err     error
	Details string
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// InsufficientStockError carries every stock violation found during
// validation, so the caller can show all problems in one pass.
type InsufficientStockError struct {
	Violations []string
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock: " + strings.Join(e.Violations, "; ")
}

func notFound(details string) error {
	return &DomainError{Err: ErrNotFound, Details: details}
}

func invalidReference(details string) error {
	return &DomainError{Err: ErrInvalidReference, Details: details}
}

func invalidAmount(details string) error {
	return &DomainError{Err: ErrInvalidAmount, Details: details}
}

func illegalState(details string) error {
	return &DomainError{Err: ErrIllegalState, Details: details}
}

func invalidInput(details string) error {
	return &DomainError{Err: ErrInvalidInput, Details: details}
}
