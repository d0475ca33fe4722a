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

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown, the password is wrong,
// or the account is deactivated. The three cases are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return AuthResult{}, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return AuthResult{User: user, AccessToken: token}, nil
}

// ResolveToken validates an access token and returns the caller identity.
// Any failure maps to ErrUnauthorized; the middleware does not get to know
// why a token was rejected.
func (s *Service) ResolveToken(ctx context.Context, token string) (Identity, error) {
	userID, isAdmin, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return Identity{}, domain.ErrUnauthorized
	}
	return Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
