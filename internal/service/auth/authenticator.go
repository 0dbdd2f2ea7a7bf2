package auth

import (
	"context"
	"errors"
	"fmt"

	"artigos-api/internal/domain/entity"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// that the two cases are indistinguishable to a caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserFinder is the slice of the user repository the authenticator needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Authenticator checks a submitted email and password against stored users.
type Authenticator struct {
	users  UserFinder
	hasher *Hasher
}

func NewAuthenticator(users UserFinder, hasher *Hasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Authenticate returns the user whose email and password match, or
// ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !a.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
