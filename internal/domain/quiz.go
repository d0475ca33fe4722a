package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuizType is a row of the fixed quiz taxonomy reference table.
type QuizType struct {
	ID   uuid.UUID
	Name QuizKind
}

// Quiz is one generated quiz instance tied to a flashcard and a user.
// Content holds the serialized kind-specific payload; Score is set when
// the user completes the attempt.
type Quiz struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FlashcardID uuid.UUID
	QuizTypeID  uuid.UUID
	Language    string
	Content     []byte
	Score       *float64
	CompletedAt *time.Time
	CreatedAt   time.Time
}
