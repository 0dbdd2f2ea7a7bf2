package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/repository"
)

func newArticleRepoMock(t *testing.T) (repository.ArticleRepository, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return NewArticleRepo(pool), mock
}

func articleColumns() []string {
	return []string{"id", "titulo", "descricao", "url_fonte", "usuario_id", "created_at"}
}

func TestArticleRepo_Get(t *testing.T) {
	repo, mock := newArticleRepoMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM artigos").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(articleColumns()).
			AddRow(5, "T", "D", "https://x.com", 1, now))

	article, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)

	want := &entity.Article{
		ID: 5, Titulo: "T", Descricao: "D", URLFonte: "https://x.com",
		UserID: 1, CreatedAt: now,
	}
	if diff := cmp.Diff(want, article); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	mock.ExpectQuery("FROM artigos").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(articleColumns()))

	article, err := repo.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, article)
}

func TestArticleRepo_Create_AssignsID(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	mock.ExpectQuery("INSERT INTO artigos").
		WithArgs("T", "D", "https://x.com", int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	article := &entity.Article{
		Titulo: "T", Descricao: "D", URLFonte: "https://x.com",
		UserID: 1, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), article))
	assert.Equal(t, int64(9), article.ID)
}

func TestArticleRepo_Update(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	mock.ExpectExec("UPDATE artigos SET").
		WithArgs("T2", "D2", "https://y.com", int64(2), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &entity.Article{
		ID: 9, Titulo: "T2", Descricao: "D2", URLFonte: "https://y.com", UserID: 2,
	})
	assert.NoError(t, err)
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	mock.ExpectExec("UPDATE artigos SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Article{ID: 9})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticleRepo_DeleteOwned(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	mock.ExpectExec("DELETE FROM artigos WHERE id = \\$1 AND usuario_id = \\$2").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteOwned(context.Background(), 9, 1))
}

func TestArticleRepo_DeleteOwned_OtherOwner(t *testing.T) {
	repo, mock := newArticleRepoMock(t)

	// The row exists but belongs to user 2; the scoped delete touches nothing.
	mock.ExpectExec("DELETE FROM artigos WHERE id = \\$1 AND usuario_id = \\$2").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteOwned(context.Background(), 9, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticleRepo_ListByUser(t *testing.T) {
	repo, mock := newArticleRepoMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("WHERE usuario_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(articleColumns()).
			AddRow(1, "A", "", "https://a.com", 1, now).
			AddRow(2, "B", "", "https://b.com", 1, now))

	articles, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "B", articles[1].Titulo)
}
