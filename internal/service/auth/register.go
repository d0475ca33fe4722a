package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Register creates a new user with email + password credentials.
// Returns ErrConflict if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	// Email uniqueness is enforced by the DB constraint.
	user, err := s.users.Create(ctx, input.Email, input.DisplayName, string(hash), false)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResult{}, fmt.Errorf("email %s is taken: %w", input.Email, domain.ErrConflict)
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return AuthResult{User: user, AccessToken: token}, nil
}
