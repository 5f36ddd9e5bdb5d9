package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository"
	"github.com/evently/evently-api/internal/repository/dao"
)

func newRatingService(db *gorm.DB) (*RatingService, *EventService) {
	eventRepo := repository.NewEventRepository(
		dao.NewEventDAO(db),
		dao.NewRegistrationDAO(db),
		dao.NewNotificationDAO(db),
	)
	ratingRepo := repository.NewRatingRepository(dao.NewRatingDAO(db))

	return NewRatingService(ratingRepo, eventRepo), NewEventService(eventRepo)
}

func TestRatingService_RateEventOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newRatingService(db)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		err := svc.RateEvent(ctx, domain.EventRating{EventID: 1, UserID: 1, Rating: rating})
		assert.ErrorIs(t, err, ErrRatingOutOfRange)
	}

	// Nothing was written.
	ratings, err := repository.NewRatingRepository(dao.NewRatingDAO(db)).FindByEventID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestRatingService_GetEventRating(t *testing.T) {
	db := newTestDB(t)
	svc, eventSvc := newRatingService(db)
	ctx := context.Background()

	event, err := eventSvc.CreateEvent(ctx, domain.Event{
		Name:      "Concert",
		Date:      time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Location:  "Hall",
		Organizer: "Crew",
	})
	require.NoError(t, err)

	average, err := svc.GetEventRating(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), average)

	require.NoError(t, svc.RateEvent(ctx, domain.EventRating{EventID: event.ID, UserID: 1, Rating: 3}))
	require.NoError(t, svc.RateEvent(ctx, domain.EventRating{EventID: event.ID, UserID: 2, Rating: 5}))

	average, err = svc.GetEventRating(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(4), average)
}

func TestRatingService_GetEventRatingUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newRatingService(db)

	_, err := svc.GetEventRating(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
