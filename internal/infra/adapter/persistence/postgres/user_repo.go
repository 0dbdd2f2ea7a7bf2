// Package postgres implements the repository contracts on top of PostgreSQL
// using the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT id, nome, sobrenome, email, senha, admin, created_at
FROM usuarios
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 32)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Nome, &user.Sobrenome, &user.Email,
			&user.PasswordHash, &user.Admin, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, nome, sobrenome, email, senha, admin, created_at
FROM usuarios
WHERE id = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, id))
}

func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, nome, sobrenome, email, senha, admin, created_at
FROM usuarios
WHERE email = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, email))
}

func (repo *UserRepo) scanOne(row *sql.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Nome, &user.Sobrenome, &user.Email,
		&user.PasswordHash, &user.Admin, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO usuarios (nome, sobrenome, email, senha, admin, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.Nome, user.Sobrenome, user.Email,
		user.PasswordHash, user.Admin, user.CreatedAt,
	).Scan(&user.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE usuarios SET
       nome      = $1,
       sobrenome = $2,
       email     = $3,
       admin     = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		user.Nome, user.Sobrenome, user.Email, user.Admin, user.ID,
	)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (repo *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE usuarios SET senha = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("UpdatePassword: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM usuarios WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
