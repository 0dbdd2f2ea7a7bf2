package repository

import (
	"context"

	"artigos-api/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	// Get retrieves a user by ID. Returns (nil, nil) if the user is not found.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// FindByEmail retrieves the user with the given email, exact match.
	// Returns (nil, nil) when no user is registered under that address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create persists a new user and fills in the generated ID.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *entity.User) error
	// Update persists all mutable profile fields of the user.
	// Returns ErrDuplicateEmail when the new email collides with another user.
	Update(ctx context.Context, user *entity.User) error
	// UpdatePassword persists a new password digest for the user.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Delete removes the user. Owned articles are removed by the storage
	// layer's cascade rule. Returns ErrNotFound when no row was deleted.
	Delete(ctx context.Context, id int64) error
}
