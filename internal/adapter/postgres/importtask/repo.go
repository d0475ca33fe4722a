// Package importtask implements persistence for import tasks and their
// quiz-generation units. Keeping this state in the database (rather than a
// process-local map) makes polling safe across processes and restarts.
package importtask

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides import task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new import task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createTaskSQL = `
INSERT INTO import_tasks (id, user_id, language, total, created_at)
VALUES ($1, $2, $3, $4, $5)`

const createUnitSQL = `
INSERT INTO import_task_units (id, task_id, flashcard_id, quiz_kind, status, attempts, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, $6)`

const getTaskSQL = `
SELECT id, user_id, language, total, created_at
FROM import_tasks
WHERE id = $1`

const progressSQL = `
SELECT count(*) FILTER (WHERE status IN ('SUCCEEDED', 'FAILED'))
FROM import_task_units
WHERE task_id = $1`

const markUnitSQL = `
UPDATE import_task_units
SET status = $2, attempts = $3, updated_at = now()
WHERE id = $1 AND status = 'PENDING'`

const pendingUnitsSQL = `
SELECT id, task_id, flashcard_id, quiz_kind, status, attempts, updated_at
FROM import_task_units
WHERE status = 'PENDING'
ORDER BY updated_at
LIMIT $1`

const deleteTaskSQL = `
DELETE FROM import_tasks
WHERE id = $1`

// CreateTask persists a task and its units. Run inside a transaction so a
// task never appears without its full unit set.
func (r *Repo) CreateTask(ctx context.Context, task domain.ImportTask, units []domain.ImportUnit) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := q.Exec(ctx, createTaskSQL, task.ID, task.UserID, task.Language, task.Total, now); err != nil {
		return postgres.MapError(err, "import_task", task.ID)
	}

	batch := &pgx.Batch{}
	for _, u := range units {
		batch.Queue(createUnitSQL, u.ID, task.ID, u.FlashcardID, u.QuizKind.String(), domain.ImportUnitPending, now)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()
	for range units {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "import_task_unit", task.ID)
		}
	}

	return nil
}

// GetTask returns a task by ID.
func (r *Repo) GetTask(ctx context.Context, taskID uuid.UUID) (domain.ImportTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ImportTask
	err := q.QueryRow(ctx, getTaskSQL, taskID).
		Scan(&t.ID, &t.UserID, &t.Language, &t.Total, &t.CreatedAt)
	if err != nil {
		return domain.ImportTask{}, postgres.MapError(err, "import_task", taskID)
	}
	return t, nil
}

// CountResolved returns how many of the task's units have reached a
// terminal state.
func (r *Repo) CountResolved(ctx context.Context, taskID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var resolved int
	if err := q.QueryRow(ctx, progressSQL, taskID).Scan(&resolved); err != nil {
		return 0, fmt.Errorf("count resolved units: %w", err)
	}
	return resolved, nil
}

// MarkUnit transitions a PENDING unit to a terminal status. The guard on
// the current status makes the transition exactly-once: a retried worker
// or a racing poll cannot resolve the same unit twice. Quiz-row inserts
// for the unit must run in the same transaction as this call.
func (r *Repo) MarkUnit(ctx context.Context, unitID uuid.UUID, status domain.ImportUnitStatus, attempts int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markUnitSQL, unitID, status, attempts)
	if err != nil {
		return postgres.MapError(err, "import_task_unit", unitID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("import unit %s: %w", unitID, domain.ErrAlreadyExists)
	}
	return nil
}

// ListPending returns up to limit unresolved units across all tasks,
// oldest first. Used to requeue work after a process restart.
func (r *Repo) ListPending(ctx context.Context, limit int) ([]domain.ImportUnit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, pendingUnitsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending units: %w", err)
	}
	defer rows.Close()

	units := []domain.ImportUnit{}
	for rows.Next() {
		var u domain.ImportUnit
		var kind, status string
		if err := rows.Scan(&u.ID, &u.TaskID, &u.FlashcardID, &kind, &status, &u.Attempts, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		u.QuizKind = domain.QuizKind(kind)
		u.Status = domain.ImportUnitStatus(status)
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}

	return units, nil
}

// DeleteTask removes a completed task; its units cascade.
func (r *Repo) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteTaskSQL, taskID); err != nil {
		return postgres.MapError(err, "import_task", taskID)
	}
	return nil
}

const deleteStaleTasksSQL = `
DELETE FROM import_tasks t
WHERE t.created_at < $1
  AND NOT EXISTS (
    SELECT 1 FROM import_task_units u
    WHERE u.task_id = t.id AND u.status = 'PENDING'
  )`

// DeleteStaleBefore removes resolved tasks older than threshold that the
// owner never polled to completion. Tasks with pending units are kept so
// a restart can still requeue them.
func (r *Repo) DeleteStaleBefore(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteStaleTasksSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete stale tasks: %w", err)
	}
	return tag.RowsAffected(), nil
}
