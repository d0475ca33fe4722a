package flashcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// ExtractWords pulls candidate terms out of pasted plain text. Entries
// are separated by newlines, commas, or semicolons; surrounding
// whitespace is trimmed and case-insensitive repeats collapse to the
// first occurrence, in input order.
func ExtractWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ';'
	})

	seen := make(map[string]bool, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimSpace(f)
		if w == "" {
			continue
		}
		key := domain.NormalizeFront(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, w)
	}
	return words
}

// DuplicateCheckResult splits a candidate word list into terms the
// requester already owns a flashcard for and terms that are new.
type DuplicateCheckResult struct {
	Duplicates []string
	Fresh      []string
}

// CheckDuplicates compares candidate words against the requester's
// existing flashcard fronts using normalized comparison, so "Run " and
// "run" collide.
func (s *Service) CheckDuplicates(ctx context.Context, words []string) (DuplicateCheckResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return DuplicateCheckResult{}, domain.ErrUnauthorized
	}
	if len(words) == 0 {
		return DuplicateCheckResult{}, domain.NewValidationError("words", "required")
	}

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		normalized = append(normalized, domain.NormalizeFront(w))
	}

	existing, err := s.flashcards.OwnedFronts(ctx, userID, normalized)
	if err != nil {
		return DuplicateCheckResult{}, fmt.Errorf("check owned fronts: %w", err)
	}
	owned := make(map[string]bool, len(existing))
	for _, front := range existing {
		owned[front] = true
	}

	var result DuplicateCheckResult
	for i, w := range words {
		if owned[normalized[i]] {
			result.Duplicates = append(result.Duplicates, w)
		} else {
			result.Fresh = append(result.Fresh, w)
		}
	}
	return result, nil
}
