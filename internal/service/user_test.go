package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository"
	"github.com/evently/evently-api/internal/repository/dao"
)

func TestUserService_CreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, domain.User{
		Username: "alice",
		Password: "password123",
		FullName: "Alice A.",
		Role:     "user",
	})
	require.NoError(t, err)

	stored, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestUserService_CreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.User{
		Username: "bob",
		Password: "password123",
		FullName: "Bob",
		Role:     "user",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, domain.User{
		Username: "bob",
		Password: "password456",
		FullName: "Another Bob",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}
