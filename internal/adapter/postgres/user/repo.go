// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, display_name, password_hash, is_admin, is_active, created_at, updated_at`

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND is_active`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND is_active`

const getUsersByEmailsSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = ANY($1::text[]) AND is_active`

const createUserSQL = `
INSERT INTO users (id, email, display_name, password_hash, is_admin, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, true, $6, $6)
RETURNING ` + userColumns

// GetByID returns an active user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns an active user by unique email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetByEmails returns the active users matching the given emails.
// Missing emails are simply absent from the result.
func (r *Repo) GetByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	if len(emails) == 0 {
		return []domain.User{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getUsersByEmailsSQL, emails)
	if err != nil {
		return nil, fmt.Errorf("get users by emails: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// Create inserts a new user. Duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email string, displayName *string, passwordHash string, isAdmin bool) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	u, err := scanUser(q.QueryRow(ctx, createUserSQL, id, email, displayName, passwordHash, isAdmin, now))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash,
		&u.IsAdmin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
