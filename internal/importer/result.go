package importer

import "github.com/google/uuid"

// Import task statuses reported by Poll.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// DispatchResult reports an accepted import.
type DispatchResult struct {
	TaskID        uuid.UUID
	AcceptedWords []string
}

// PollResult reports import progress.
type PollResult struct {
	Status          string
	ProgressPercent int
}
