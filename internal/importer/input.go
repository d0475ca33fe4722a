package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// MaxWordsPerImport bounds one import request.
const MaxWordsPerImport = 500

// DispatchInput holds the parameters for starting an import.
type DispatchInput struct {
	Pairs      []domain.WordPair
	Language   string
	CatalogIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DispatchInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Pairs) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required"})
	}
	if len(i.Pairs) > MaxWordsPerImport {
		errs = append(errs, domain.FieldError{Field: "words", Message: "max 500 words per import"})
	}
	for _, p := range i.Pairs {
		if strings.TrimSpace(p.Front) == "" || strings.TrimSpace(p.Back) == "" {
			errs = append(errs, domain.FieldError{Field: "words", Message: "every word needs a front and a back"})
			break
		}
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	for _, id := range i.CatalogIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "catalog_ids", Message: "contains a nil ID"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateWordsInput holds the parameters for LLM word validation.
type ValidateWordsInput struct {
	Words    []string
	Language string
}

// Validate checks all fields and collects all errors.
func (i ValidateWordsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required"})
	}
	if len(i.Words) > MaxWordsPerImport {
		errs = append(errs, domain.FieldError{Field: "words", Message: "max 500 words"})
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateDefinitionsInput holds the parameters for definition
// generation. Same shape as validation; kept separate so the two
// operations can grow apart.
type GenerateDefinitionsInput struct {
	Words    []string
	Language string
}

// Validate checks all fields and collects all errors.
func (i GenerateDefinitionsInput) Validate() error {
	return ValidateWordsInput{Words: i.Words, Language: i.Language}.Validate()
}
