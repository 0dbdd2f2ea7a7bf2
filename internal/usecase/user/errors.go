package user

import "errors"

var (
	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when the given ID is not positive.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrEmailAlreadyRegistered is returned when the email is already taken
	// by another account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
