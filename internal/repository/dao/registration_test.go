package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationDAO_FindUserIDsDeduplicates(t *testing.T) {
	db := newTestDB(t)
	d := NewRegistrationDAO(db)
	ctx := context.Background()

	// Duplicate registrations are allowed, but the fan-out set is distinct.
	_, err := d.Insert(ctx, Registration{EventID: 1, UserID: 7})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Registration{EventID: 1, UserID: 7})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Registration{EventID: 1, UserID: 9})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Registration{EventID: 2, UserID: 11})
	require.NoError(t, err)

	userIDs, err := d.FindUserIDsByEventID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{7, 9}, userIDs)
}

func TestRegistrationDAO_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	d := NewRegistrationDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, Registration{EventID: 1, UserID: 7})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Registration{EventID: 1, UserID: 7})
	require.NoError(t, err)

	// Removes every matching row, and succeeds again when nothing matches.
	require.NoError(t, d.Delete(ctx, 1, 7))
	require.NoError(t, d.Delete(ctx, 1, 7))

	userIDs, err := d.FindUserIDsByEventID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, userIDs)
}
