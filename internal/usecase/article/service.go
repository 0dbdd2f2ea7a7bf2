package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Titulo    string
	Descricao string
	URLFonte  string
	UserID    int64
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID        int64
	Titulo    *string
	Descricao *string
	URLFonte  *string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.ArticleRepository

	// OpenEditing allows any authenticated user to edit any article.
	// An edit by a non-owner transfers ownership to the editor. When
	// disabled, non-owners get ErrArticleNotFound instead.
	OpenEditing bool
}

// List retrieves all articles from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByUser retrieves all articles owned by the given user.
// Returns an error if the repository operation fails.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*entity.Article, error) {
	articles, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list articles by user: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create creates a new article owned by the given user.
// It validates the input data including the source URL format.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Titulo == "" {
		return nil, &entity.ValidationError{Field: "titulo", Message: "is required"}
	}
	if in.UserID <= 0 {
		return nil, &entity.ValidationError{Field: "usuario_id", Message: "must be positive"}
	}
	if err := entity.ValidateURL(in.URLFonte); err != nil {
		return nil, fmt.Errorf("validate URL: %w", err)
	}

	art := &entity.Article{
		Titulo:    in.Titulo,
		Descricao: in.Descricao,
		URLFonte:  in.URLFonte,
		UserID:    in.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated. When open editing is
// enabled and the actor is not the current owner, the article is reassigned
// to the actor. When open editing is disabled the article is simply not
// visible to non-owners.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, actorID int64, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	if art.UserID != actorID {
		if !s.OpenEditing {
			return nil, ErrArticleNotFound
		}
		art.UserID = actorID
	}

	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, &entity.ValidationError{Field: "titulo", Message: "cannot be empty"}
		}
		art.Titulo = *in.Titulo
	}
	if in.Descricao != nil {
		art.Descricao = *in.Descricao
	}
	if in.URLFonte != nil {
		if err := entity.ValidateURL(*in.URLFonte); err != nil {
			return nil, fmt.Errorf("validate URL: %w", err)
		}
		art.URLFonte = *in.URLFonte
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article owned by the actor.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist or belongs to
// another user.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.DeleteOwned(ctx, id, actorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
