package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// ShareResult reports the per-email outcome of a share request.
type ShareResult struct {
	Shared        []string
	AlreadyShared []string
	UnknownEmails []string
}

// Share grants read access to a catalog for every resolvable email.
// Sharing is idempotent: emails that already have access are reported,
// not failed. Unknown emails are reported rather than aborting the batch.
func (s *Service) Share(ctx context.Context, input ShareInput) (ShareResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ShareResult{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return ShareResult{}, err
	}

	c, err := s.catalogs.GetByID(ctx, input.CatalogID)
	if err != nil {
		return ShareResult{}, fmt.Errorf("get catalog: %w", err)
	}
	if c.OwnerID != userID {
		return ShareResult{}, fmt.Errorf("catalog %s is not owned by the requester: %w", input.CatalogID, domain.ErrForbidden)
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
			return ShareResult{}, domain.NewValidationError("emails", "cannot share a catalog with its owner")
		}

		created, err := s.shares.AddCatalogShare(ctx, input.CatalogID, u.ID)
		if err != nil {
			return ShareResult{}, fmt.Errorf("share with %s: %w", email, err)
		}
		if created {
			result.Shared = append(result.Shared, email)
		} else {
			result.AlreadyShared = append(result.AlreadyShared, email)
		}
	}

	s.log.InfoContext(ctx, "catalog shared",
		slog.String("catalog_id", input.CatalogID.String()),
		slog.Int("shared", len(result.Shared)),
		slog.Int("already_shared", len(result.AlreadyShared)),
		slog.Int("unknown", len(result.UnknownEmails)),
	)
	return result, nil
}

// Unshare revokes a user's access to a catalog the requester owns.
// Revoking access that was never granted is a no-op.
func (s *Service) Unshare(ctx context.Context, catalogID, sharedWithID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}
	if c.OwnerID != userID {
		return fmt.Errorf("catalog %s is not owned by the requester: %w", catalogID, domain.ErrForbidden)
	}

	err = s.shares.RemoveCatalogShare(ctx, catalogID, sharedWithID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("remove share: %w", err)
	}
	return nil
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
