package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

const (
	maxNameLength        = 120
	maxDescriptionLength = 2000
	maxShareEmails       = 50
)

// CreateInput holds the parameters for creating a catalog.
type CreateInput struct {
	Name         string
	Description  *string
	Language     string
	Visibility   domain.Visibility
	FlashcardIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be PRIVATE or PUBLIC"})
	}
	for _, id := range i.FlashcardIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "flashcard_ids", Message: "contains a nil ID"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ShareInput holds the parameters for sharing a catalog by email.
type ShareInput struct {
	CatalogID uuid.UUID
	Emails    []string
}

// Validate checks all fields and collects all errors.
func (i ShareInput) Validate() error {
	var errs []domain.FieldError

	if i.CatalogID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "catalog_id", Message: "required"})
	}
	if len(i.Emails) == 0 {
		errs = append(errs, domain.FieldError{Field: "emails", Message: "required"})
	}
	if len(i.Emails) > maxShareEmails {
		errs = append(errs, domain.FieldError{Field: "emails", Message: "max 50 emails per request"})
	}
	for _, e := range i.Emails {
		if !strings.Contains(e, "@") {
			errs = append(errs, domain.FieldError{Field: "emails", Message: "contains an invalid email"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
