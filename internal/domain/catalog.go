package domain

import (
	"time"

	"github.com/google/uuid"
)

// Catalog is a named, owned collection of flashcards restricted to one
// target language. (owner_id, lower(name)) is unique: a user cannot have
// two catalogs with the same name.
type Catalog struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string
	Language    string
	Visibility  Visibility
	CreatedAt   time.Time
}

// CatalogShare grants one user read access to a catalog they do not own.
// (catalog_id, shared_with_id) is the composite key.
type CatalogShare struct {
	CatalogID    uuid.UUID
	SharedWithID uuid.UUID
	CanModify    bool
	CreatedAt    time.Time
}

// CollectionEntry records that a user has opted a PUBLIC catalog into
// their personal collection. PUBLIC alone does not imply collection
// membership.
type CollectionEntry struct {
	UserID    uuid.UUID
	CatalogID uuid.UUID
	AddedAt   time.Time
}
