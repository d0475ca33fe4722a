package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Delete removes a catalog the requester owns. With cascadeOwnFlashcards
// set, flashcards owned by the requester that are linked to no other
// catalog are deleted together with the catalog; shared or multi-catalog
// cards always survive.
func (s *Service) Delete(ctx context.Context, catalogID uuid.UUID, cascadeOwnFlashcards bool) error {
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

	var cascaded int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var exclusive []uuid.UUID
		if cascadeOwnFlashcards {
			ids, err := s.catalogs.ExclusiveFlashcardIDs(ctx, catalogID, userID)
			if err != nil {
				return fmt.Errorf("list exclusive flashcards: %w", err)
			}
			exclusive = ids
		}

		if err := s.catalogs.Delete(ctx, userID, catalogID); err != nil {
			return fmt.Errorf("delete catalog: %w", err)
		}
		for _, id := range exclusive {
			if err := s.flashcards.Delete(ctx, userID, id); err != nil {
				return fmt.Errorf("delete flashcard %s: %w", id, err)
			}
		}
		cascaded = len(exclusive)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "catalog deleted",
		slog.String("catalog_id", catalogID.String()),
		slog.Int("cascaded_flashcards", cascaded),
	)
	return nil
}
