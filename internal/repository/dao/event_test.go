package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDAO_Update(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Event{
		Name:        "Test Event",
		Description: "Description",
		Date:        time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
		Location:    "Online",
		Organizer:   "Test Organizer",
	})
	require.NoError(t, err)

	err = d.Update(ctx, Event{
		ID:          created.ID,
		Name:        "Updated Event",
		Description: "Updated Description",
		Date:        time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
		Location:    "Updated Location",
		Organizer:   "Updated Organizer",
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Event", found.Name)
	assert.Equal(t, "Updated Description", found.Description)
	assert.Equal(t, "Updated Location", found.Location)
	assert.Equal(t, "Updated Organizer", found.Organizer)
}

func TestEventDAO_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)

	err := d.Update(context.Background(), Event{
		ID:          999,
		Name:        "Ghost",
		Description: "Ghost",
		Date:        time.Now(),
		Location:    "Nowhere",
		Organizer:   "Nobody",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)

	_, err := d.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Event{
		Name:      "Short-lived",
		Date:      time.Now(),
		Location:  "Here",
		Organizer: "Someone",
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))
	require.NoError(t, d.Delete(ctx, created.ID))

	events, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
