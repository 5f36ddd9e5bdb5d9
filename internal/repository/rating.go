package repository

import (
	"context"
	"fmt"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository/dao"
)

type RatingDAO interface {
	Upsert(ctx context.Context, rating dao.EventRating) error
	AverageByEventID(ctx context.Context, eventID uint) (float64, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.EventRating, error)
}

type RatingRepository struct {
	dao RatingDAO
}

func NewRatingRepository(dao RatingDAO) *RatingRepository {
	return &RatingRepository{
		dao: dao,
	}
}

func (r *RatingRepository) Upsert(ctx context.Context, rating domain.EventRating) error {
	err := r.dao.Upsert(ctx, dao.EventRating{
		EventID: rating.EventID,
		UserID:  rating.UserID,
		Rating:  rating.Rating,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *RatingRepository) AverageByEventID(ctx context.Context, eventID uint) (float64, error) {
	average, err := r.dao.AverageByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.AverageByEventID -> %w", err)
	}

	return average, nil
}

func (r *RatingRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.EventRating, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	ratings := make([]domain.EventRating, 0, len(found))
	for _, rating := range found {
		ratings = append(ratings, domain.EventRating{
			EventID: rating.EventID,
			UserID:  rating.UserID,
			Rating:  rating.Rating,
		})
	}

	return ratings, nil
}
