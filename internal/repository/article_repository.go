package repository

import (
	"context"

	"artigos-api/internal/domain/entity"
)

type ArticleRepository interface {
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByUser retrieves all articles owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Article, error)
	// Get retrieves an article by ID. Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create persists a new article and fills in the generated ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update persists all mutable fields of the article, including the owner.
	Update(ctx context.Context, article *entity.Article) error
	// DeleteOwned removes the article only when it is owned by userID.
	// Returns ErrNotFound when no matching row was deleted, whether because
	// the article does not exist or because it belongs to someone else.
	DeleteOwned(ctx context.Context, id, userID int64) error
}
