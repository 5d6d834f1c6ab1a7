package postgres

import (
	"context"
	"database/sql"

	"programboard/internal/model"
	"programboard/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// FindByUsername fetches an admin account by username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`
	row := r.db.QueryRowContext(ctx, q, username)
	var u model.AdminUser
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateIfAbsent inserts an account; an existing username wins the conflict
// and keeps its stored hash.
func (r *UserPostgres) CreateIfAbsent(ctx context.Context, username, passwordHash string) error {
	const q = `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, username, passwordHash)
	return err
}
