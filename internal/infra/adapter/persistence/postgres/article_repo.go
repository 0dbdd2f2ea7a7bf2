package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, titulo, descricao, url_fonte, usuario_id, created_at
FROM artigos
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

func (repo *ArticleRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Article, error) {
	const query = `
SELECT id, titulo, descricao, url_fonte, usuario_id, created_at
FROM artigos
WHERE usuario_id = $1
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

func scanArticles(rows *sql.Rows) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Titulo, &article.Descricao,
			&article.URLFonte, &article.UserID, &article.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, titulo, descricao, url_fonte, usuario_id, created_at
FROM artigos
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Titulo, &article.Descricao,
			&article.URLFonte, &article.UserID, &article.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO artigos (titulo, descricao, url_fonte, usuario_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Titulo, article.Descricao, article.URLFonte,
		article.UserID, article.CreatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE artigos SET
       titulo     = $1,
       descricao  = $2,
       url_fonte  = $3,
       usuario_id = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		article.Titulo, article.Descricao, article.URLFonte,
		article.UserID, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) DeleteOwned(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM artigos WHERE id = $1 AND usuario_id = $2`
	res, err := repo.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("DeleteOwned: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
