package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// requeueBatchSize bounds one Resume pass.
const requeueBatchSize = 1000

// Resume re-enqueues quiz units left pending by a previous process.
// Called once at startup, after the pool is running.
func (s *Service) Resume(ctx context.Context) error {
	units, err := s.tasks.ListPending(ctx, requeueBatchSize)
	if err != nil {
		return fmt.Errorf("list pending units: %w", err)
	}
	if len(units) == 0 {
		return nil
	}

	byFlashcard := make(map[uuid.UUID][]domain.ImportUnit)
	for _, u := range units {
		byFlashcard[u.FlashcardID] = append(byFlashcard[u.FlashcardID], u)
	}

	tasks := make(map[uuid.UUID]domain.ImportTask)
	requeued := 0

	for flashcardID, group := range byFlashcard {
		taskID := group[0].TaskID
		task, ok := tasks[taskID]
		if !ok {
			task, err = s.tasks.GetTask(ctx, taskID)
			if err != nil {
				s.log.WarnContext(ctx, "pending units reference a missing task",
					slog.String("task_id", taskID.String()), slog.Any("error", err))
				continue
			}
			tasks[taskID] = task
		}

		fc, err := s.flashcards.GetByID(ctx, flashcardID)
		if err != nil {
			s.log.WarnContext(ctx, "pending units reference a missing flashcard",
				slog.String("flashcard_id", flashcardID.String()), slog.Any("error", err))
			continue
		}

		s.pool.Submit(&quizGenJob{svc: s, task: task, flashcard: fc, units: group})
		requeued += len(group)
	}

	s.log.InfoContext(ctx, "pending quiz units requeued", slog.Int("units", requeued))
	return nil
}
