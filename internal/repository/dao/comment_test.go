package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentDAO_FindByEventIDJoinsUsername(t *testing.T) {
	db := newTestDB(t)
	commentDAO := NewCommentDAO(db)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	user, err := userDAO.Insert(ctx, User{
		Username: "testUser",
		Password: "secret",
		FullName: "Test User",
		Role:     "user",
	})
	require.NoError(t, err)

	first, err := commentDAO.Insert(ctx, Comment{EventID: 1, UserID: user.ID, Comment: "first"})
	require.NoError(t, err)
	_, err = commentDAO.Insert(ctx, Comment{EventID: 1, UserID: user.ID, Comment: "second"})
	require.NoError(t, err)
	_, err = commentDAO.Insert(ctx, Comment{EventID: 2, UserID: user.ID, Comment: "other event"})
	require.NoError(t, err)

	comments, err := commentDAO.FindByEventID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, "first", comments[0].Comment)
	assert.Equal(t, "second", comments[1].Comment)
	assert.Equal(t, "testUser", comments[0].Username)
	assert.False(t, comments[0].Timestamp.IsZero())
}

func TestCommentDAO_DeleteTwice(t *testing.T) {
	db := newTestDB(t)
	d := NewCommentDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Comment{EventID: 1, UserID: 1, Comment: "bye"})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	err = d.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
