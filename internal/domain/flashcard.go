package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a front (term) / back (definition) pair in one language,
// owned by exactly one user. Content is immutable after creation; deletion
// cascades to catalog links, shares, quizzes, and study state.
type Flashcard struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Front     string
	Back      string
	Language  string
	CreatedAt time.Time
}

// FlashcardWithAuthor pairs a flashcard with its owner's display name for
// listings that mix owned and shared cards.
type FlashcardWithAuthor struct {
	Flashcard
	AuthorName string
	IsOwner    bool
}

// FlashcardShare grants one user read access to a flashcard they do not
// own. (flashcard_id, shared_with_id) is the composite key, so sharing
// the same card with the same user twice is a no-op.
type FlashcardShare struct {
	FlashcardID  uuid.UUID
	SharedWithID uuid.UUID
	CanModify    bool
	CreatedAt    time.Time
}

// StudyState is the per-user spaced-repetition record for one flashcard.
// Created when the user first studies the card, mutated on each review.
type StudyState struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FlashcardID    uuid.UUID
	MemoryStrength float64
	LastReviewed   *time.Time
	NextReview     *time.Time
}

// FlashcardStats summarizes a user's flashcards for the dashboard.
type FlashcardStats struct {
	TotalCards    int
	CardsToReview int
	AverageLevel  float64
}
