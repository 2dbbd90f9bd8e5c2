package repository

import (
	"context"
	"errors"

	"github.com/sessionworks/go-auth-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned by point lookups when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by Create when the email unique
	// constraint is violated.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
