package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDAO_InsertDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, User{Username: "alice", Password: "x", FullName: "Alice", Role: "user"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Username: "alice", Password: "y", FullName: "Other Alice", Role: "user"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserDAO_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewUserDAO(db)

	err := d.Update(context.Background(), User{
		ID:       999,
		Username: "ghost",
		Password: "x",
		FullName: "Ghost",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
