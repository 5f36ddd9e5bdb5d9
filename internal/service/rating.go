package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/evently/evently-api/internal/domain"
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating domain.EventRating) error
	AverageByEventID(ctx context.Context, eventID uint) (float64, error)
}

// RatingEventRepository is the slice of the event repository the rating
// service needs to confirm an event exists.
type RatingEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type RatingService struct {
	repo      RatingRepository
	eventRepo RatingEventRepository
}

func NewRatingService(repo RatingRepository, eventRepo RatingEventRepository) *RatingService {
	return &RatingService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// RateEvent stores the user's rating of the event, overwriting any previous
// rating by the same user. Out-of-range ratings are rejected before any write.
func (s *RatingService) RateEvent(ctx context.Context, rating domain.EventRating) error {
	if rating.Rating < MinRating || rating.Rating > MaxRating {
		return ErrRatingOutOfRange
	}

	if err := s.repo.Upsert(ctx, rating); err != nil {
		return fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return nil
}

// GetEventRating returns the mean rating of the event, or 0 when nobody has
// rated it yet. The event must exist.
func (s *RatingService) GetEventRating(ctx context.Context, eventID uint) (float64, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return 0, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	average, err := s.repo.AverageByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.AverageByEventID -> %w", err)
	}

	return average, nil
}
