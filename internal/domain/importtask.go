package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportTask tracks one word-import request while its quiz-generation
// units are in flight. Tasks and their units are persisted so polling is
// safe across processes and survives restarts; a task is deleted once
// every unit has resolved and progress reached 100%.
type ImportTask struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Language  string
	Total     int
	CreatedAt time.Time
}

// ImportUnit is one quiz-generation unit of work: a single
// (flashcard, quiz kind) pair belonging to an import task. Quiz rows for
// a unit are inserted in the same transaction that flips its status, so
// re-polling can never double-insert.
type ImportUnit struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	FlashcardID uuid.UUID
	QuizKind    QuizKind
	Status      ImportUnitStatus
	Attempts    int
	UpdatedAt   time.Time
}

// ImportProgress is the result of polling an import task.
type ImportProgress struct {
	TaskID          uuid.UUID
	Total           int
	Resolved        int
	ProgressPercent int
	Completed       bool
}

// Percent computes completed/total × 100, rounded down. A task with no
// units counts as complete.
func (p ImportProgress) Percent() int {
	if p.Total == 0 {
		return 100
	}
	return p.Resolved * 100 / p.Total
}
