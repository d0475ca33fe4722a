package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Dispatch persists the submitted word pairs as flashcards, links them to
// the requested catalogs, records an import task with one unit per
// (flashcard, quiz kind), and queues quiz generation in the background.
// Flashcard creation is all-or-nothing: any failure rolls back every row.
func (s *Service) Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if len(input.CatalogIDs) > 0 {
		if err := s.checkCatalogs(ctx, userID, input); err != nil {
			return nil, err
		}
	}

	task := domain.ImportTask{
		ID:        uuid.New(),
		UserID:    userID,
		Language:  input.Language,
		Total:     len(input.Pairs) * len(domain.AllQuizKinds),
		CreatedAt: time.Now().UTC(),
	}

	var (
		created []domain.Flashcard
		units   []domain.ImportUnit
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created = created[:0]
		units = units[:0]

		for _, pair := range input.Pairs {
			fc, err := s.flashcards.Create(ctx, userID, pair.Front, pair.Back, input.Language)
			if err != nil {
				return fmt.Errorf("create flashcard %q: %w", pair.Front, err)
			}
			created = append(created, fc)

			for _, catalogID := range input.CatalogIDs {
				if err := s.catalogs.LinkFlashcard(ctx, catalogID, fc.ID); err != nil {
					return fmt.Errorf("link flashcard %q to catalog %s: %w", pair.Front, catalogID, err)
				}
			}

			for _, kind := range domain.AllQuizKinds {
				units = append(units, domain.ImportUnit{
					ID:          uuid.New(),
					TaskID:      task.ID,
					FlashcardID: fc.ID,
					QuizKind:    kind,
					Status:      domain.ImportUnitPending,
				})
			}
		}

		return s.tasks.CreateTask(ctx, task, units)
	})
	if err != nil {
		return nil, err
	}

	s.enqueue(task, created, units)

	accepted := make([]string, len(created))
	for i, fc := range created {
		accepted[i] = fc.Front
	}

	s.log.InfoContext(ctx, "import dispatched",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.Int("flashcards", len(created)),
		slog.Int("units", len(units)),
	)

	return &DispatchResult{TaskID: task.ID, AcceptedWords: accepted}, nil
}

// checkCatalogs verifies every requested catalog exists, is owned by the
// requester, and targets the import's language.
func (s *Service) checkCatalogs(ctx context.Context, userID uuid.UUID, input DispatchInput) error {
	owned, err := s.catalogs.GetOwnedByIDs(ctx, userID, input.CatalogIDs)
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	ownedByID := make(map[uuid.UUID]domain.Catalog, len(owned))
	for _, c := range owned {
		ownedByID[c.ID] = c
	}

	for _, id := range input.CatalogIDs {
		c, ok := ownedByID[id]
		if !ok {
			return fmt.Errorf("catalog %s is not owned by the requester: %w", id, domain.ErrForbidden)
		}
		if c.Language != input.Language {
			return domain.NewValidationError("catalog_ids",
				fmt.Sprintf("catalog %q targets language %q, import is %q", c.Name, c.Language, input.Language))
		}
	}

	return nil
}

// enqueue submits one quiz-generation job per flashcard, each carrying
// the flashcard's units.
func (s *Service) enqueue(task domain.ImportTask, flashcards []domain.Flashcard, units []domain.ImportUnit) {
	unitsByFlashcard := make(map[uuid.UUID][]domain.ImportUnit, len(flashcards))
	for _, u := range units {
		unitsByFlashcard[u.FlashcardID] = append(unitsByFlashcard[u.FlashcardID], u)
	}

	for _, fc := range flashcards {
		s.pool.Submit(&quizGenJob{
			svc:       s,
			task:      task,
			flashcard: fc,
			units:     unitsByFlashcard[fc.ID],
		})
	}
}
