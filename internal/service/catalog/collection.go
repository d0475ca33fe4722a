package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// AddToCollection puts a catalog into the requester's personal
// collection. The catalog must be public, owned by the requester, or
// shared with them. Adding a catalog twice is a no-op.
func (s *Service) AddToCollection(ctx context.Context, catalogID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}
	if c.Visibility != domain.VisibilityPublic && c.OwnerID != userID {
		shared, err := s.shares.CatalogSharedWith(ctx, catalogID, userID)
		if err != nil {
			return fmt.Errorf("check share: %w", err)
		}
		if !shared {
			return fmt.Errorf("catalog %s is not accessible to the requester: %w", catalogID, domain.ErrForbidden)
		}
	}

	added, err := s.collection.Add(ctx, userID, catalogID)
	if err != nil {
		return fmt.Errorf("add to collection: %w", err)
	}
	if added {
		s.log.InfoContext(ctx, "catalog added to collection",
			slog.String("catalog_id", catalogID.String()),
			slog.String("user_id", userID.String()),
		)
	}
	return nil
}

// RemoveFromCollection drops a catalog from the requester's collection.
// Removing an absent entry is a no-op.
func (s *Service) RemoveFromCollection(ctx context.Context, catalogID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.collection.Remove(ctx, userID, catalogID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("remove from collection: %w", err)
	}
	return nil
}
