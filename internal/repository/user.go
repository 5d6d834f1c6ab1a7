package repository

import (
	"context"

	"programboard/internal/model"
)

// UserRepository defines data access for admin accounts.
type UserRepository interface {
	// FindByUsername returns the account with the given username, or sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// CreateIfAbsent inserts an account unless the username is already taken;
	// an existing account is left untouched.
	CreateIfAbsent(ctx context.Context, username, passwordHash string) error
}
