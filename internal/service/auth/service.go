// Package auth handles registration, password login, and access-token
// resolution for HTTP requests.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/config"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// --- dependencies ---

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, email string, displayName *string, passwordHash string, isAdmin bool) (domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, isAdmin bool) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, bool, error)
}

// --- service ---

// Service implements auth operations.
type Service struct {
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	log   *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		log:   log.With("service", "auth"),
	}
}
