package article

import "errors"

var (
	// ErrArticleNotFound is returned when the requested article does not
	// exist or is not visible to the caller.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID is returned when the given ID is not positive.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
