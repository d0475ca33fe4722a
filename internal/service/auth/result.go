package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// AuthResult carries the authenticated user and their access token.
type AuthResult struct {
	User        domain.User
	AccessToken string
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}
