package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

const maxShareEmails = 50

// ShareInput holds the parameters for sharing a flashcard by email.
type ShareInput struct {
	FlashcardID uuid.UUID
	Emails      []string
}

// Validate checks all fields and collects all errors.
func (i ShareInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
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

// ShareResult reports the per-email outcome of a share request.
type ShareResult struct {
	Shared        []string
	AlreadyShared []string
	UnknownEmails []string
}

// Share grants read access to a flashcard for every resolvable email.
// Re-sharing with a user who already has access is reported, not failed.
func (s *Service) Share(ctx context.Context, input ShareInput) (ShareResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ShareResult{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return ShareResult{}, err
	}

	card, err := s.flashcards.GetByID(ctx, input.FlashcardID)
	if err != nil {
		return ShareResult{}, fmt.Errorf("get flashcard: %w", err)
	}
	if card.OwnerID != userID {
		return ShareResult{}, fmt.Errorf("flashcard %s is not owned by the requester: %w", input.FlashcardID, domain.ErrForbidden)
	}

	emails := normalizeEmails(input.Emails)
	users, err := s.users.GetByEmails(ctx, emails)
	if err != nil {
		return ShareResult{}, fmt.Errorf("resolve emails: %w", err)
	}
	byEmail := make(map[string]domain.User, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(u.Email)] = u
	}

	var result ShareResult
	for _, email := range emails {
		u, found := byEmail[email]
		if !found {
			result.UnknownEmails = append(result.UnknownEmails, email)
			continue
		}
		if u.ID == userID {
			return ShareResult{}, domain.NewValidationError("emails", "cannot share a flashcard with its owner")
		}

		created, err := s.shares.AddFlashcardShare(ctx, input.FlashcardID, u.ID)
		if err != nil {
			return ShareResult{}, fmt.Errorf("share with %s: %w", email, err)
		}
		if created {
			result.Shared = append(result.Shared, email)
		} else {
			result.AlreadyShared = append(result.AlreadyShared, email)
		}
	}

	s.log.InfoContext(ctx, "flashcard shared",
		slog.String("flashcard_id", input.FlashcardID.String()),
		slog.Int("shared", len(result.Shared)),
		slog.Int("already_shared", len(result.AlreadyShared)),
		slog.Int("unknown", len(result.UnknownEmails)),
	)
	return result, nil
}

func normalizeEmails(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
