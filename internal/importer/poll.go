package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

// Poll reports progress for an import task. Progress is non-decreasing:
// units only move from pending to a terminal state. Once every unit has
// resolved, the task row is deleted and further polls return
// domain.ErrNotFound.
func (s *Service) Poll(ctx context.Context, taskID uuid.UUID) (*PollResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, fmt.Errorf("import task %s belongs to another user: %w", taskID, domain.ErrForbidden)
	}

	resolved, err := s.tasks.CountResolved(ctx, taskID)
	if err != nil {
		return nil, err
	}

	progress := domain.ImportProgress{
		TaskID:   taskID,
		Total:    task.Total,
		Resolved: resolved,
	}

	if resolved < task.Total {
		return &PollResult{
			Status:          StatusProcessing,
			ProgressPercent: progress.Percent(),
		}, nil
	}

	if err := s.tasks.DeleteTask(ctx, taskID); err != nil {
		return nil, fmt.Errorf("discard completed task: %w", err)
	}

	s.log.InfoContext(ctx, "import completed",
		slog.String("task_id", taskID.String()),
		slog.Int("units", task.Total),
	)

	return &PollResult{Status: StatusCompleted, ProgressPercent: 100}, nil
}
