package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// SetVisibility flips a catalog between PRIVATE and PUBLIC. Only the
// owner may change visibility. Making a catalog private does not remove
// collection entries; they simply stop resolving until it is public again.
func (s *Service) SetVisibility(ctx context.Context, catalogID uuid.UUID, v domain.Visibility) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !v.IsValid() {
		return domain.NewValidationError("visibility", "must be PRIVATE or PUBLIC")
	}

	c, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}
	if c.OwnerID != userID {
		return fmt.Errorf("catalog %s is not owned by the requester: %w", catalogID, domain.ErrForbidden)
	}

	if err := s.catalogs.SetVisibility(ctx, userID, catalogID, v); err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}

	s.log.InfoContext(ctx, "catalog visibility changed",
		slog.String("catalog_id", catalogID.String()),
		slog.String("visibility", v.String()),
	)
	return nil
}
