package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"programboard/internal/auth"
	"programboard/internal/model"
	repoMocks "programboard/internal/repository/mocks"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &model.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hash)}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "valid credentials",
			username: "admin",
			password: "admin123",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByUsername", ctx, "admin").Return(admin, nil)
			},
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "admin123",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByUsername", ctx, "admin").Return(admin, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			username: "admin",
			password: "admin123",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByUsername", ctx, "admin").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			svc := NewAuthService(mUsers, tokens)

			tt.setupMocks(mUsers)

			token, err := svc.Login(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrInvalidCredentials) {
					assert.ErrorIs(t, err, ErrInvalidCredentials)
				} else {
					assert.Error(t, err)
				}
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				sub, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, "1", sub)
			}
			mUsers.AssertExpectations(t)
		})
	}
}
