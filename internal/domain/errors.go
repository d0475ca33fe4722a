package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrSchemaViolation means the LLM responded but the payload failed
	// schema validation. Never retried: it indicates a provider-side
	// contract breach and must be surfaced.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrMaxRetries means the retry budget for a unit of work is exhausted.
	// The unit resolves to an empty contribution instead of failing the
	// whole request.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateFront records one front text that appears on two or more
// flashcards within a single catalog-creation request.
type DuplicateFront struct {
	Front        string
	FlashcardIDs []uuid.UUID
}

// DuplicateFrontError rejects a catalog-creation request whose flashcard
// set contains repeated front texts. Every duplicate is enumerated with
// the conflicting flashcard IDs.
type DuplicateFrontError struct {
	Duplicates []DuplicateFront
}

func (e *DuplicateFrontError) Error() string {
	parts := make([]string, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		ids := make([]string, 0, len(d.FlashcardIDs))
		for _, id := range d.FlashcardIDs {
			ids = append(ids, id.String())
		}
		parts = append(parts, fmt.Sprintf("%q (%s)", d.Front, strings.Join(ids, ", ")))
	}
	return "duplicate fronts in catalog: " + strings.Join(parts, "; ")
}

func (e *DuplicateFrontError) Unwrap() error { return ErrValidation }
