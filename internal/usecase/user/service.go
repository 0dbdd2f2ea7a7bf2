package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/repository"
)

// PasswordHasher derives a one-way digest from a plain text password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SignupInput represents the input parameters for registering a new user.
type SignupInput struct {
	Nome      string
	Sobrenome string
	Email     string
	Senha     string
	Admin     bool
}

// UpdateInput represents the input parameters for updating an existing user.
// Fields with nil values will not be updated. Password changes go through
// ChangePassword instead.
type UpdateInput struct {
	ID        int64
	Nome      *string
	Sobrenome *string
	Email     *string
	Admin     *bool
}

// Service provides user management use cases.
// It handles business logic for user operations and delegates persistence
// to the repository.
type Service struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
}

// Signup registers a new user. The plain text password is hashed before it
// reaches the repository.
// Returns a ValidationError if any input field is invalid.
// Returns ErrEmailAlreadyRegistered if the email is taken.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if in.Nome == "" {
		return nil, &entity.ValidationError{Field: "nome", Message: "is required"}
	}
	if in.Senha == "" {
		return nil, &entity.ValidationError{Field: "senha", Message: "is required"}
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("validate email: %w", err)
	}

	digest, err := s.Hasher.Hash(in.Senha)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr := &entity.User{
		Nome:         in.Nome,
		Sobrenome:    in.Sobrenome,
		Email:        in.Email,
		PasswordHash: digest,
		Admin:        in.Admin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, usr); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return usr, nil
}

// List retrieves all users from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get retrieves a single user by its ID.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	usr, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// Update modifies an existing user with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the user does not exist.
// Returns ErrEmailAlreadyRegistered if the new email is taken.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidUserID
	}

	usr, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}

	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, &entity.ValidationError{Field: "nome", Message: "cannot be empty"}
		}
		usr.Nome = *in.Nome
	}
	if in.Sobrenome != nil {
		usr.Sobrenome = *in.Sobrenome
	}
	if in.Email != nil {
		if err := entity.ValidateEmail(*in.Email); err != nil {
			return nil, fmt.Errorf("validate email: %w", err)
		}
		usr.Email = *in.Email
	}
	if in.Admin != nil {
		usr.Admin = *in.Admin
	}

	if err := s.Repo.Update(ctx, usr); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailAlreadyRegistered
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return usr, nil
}

// ChangePassword replaces the user's password. The plain text password is
// always re-hashed; the stored digest never equals the submitted value.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) ChangePassword(ctx context.Context, id int64, senha string) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	if senha == "" {
		return &entity.ValidationError{Field: "senha", Message: "is required"}
	}

	digest, err := s.Hasher.Hash(senha)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.Repo.UpdatePassword(ctx, id, digest); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Delete removes a user by its ID. Articles owned by the user are removed
// by the database cascade.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
