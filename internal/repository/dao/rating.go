package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRating struct {
	EventID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID  uint `gorm:"primaryKey;autoIncrement:false"`
	Rating  int  `gorm:"not null"`

	Event Event `gorm:"foreignKey:EventID"`
	User  User  `gorm:"foreignKey:UserID"`
}

type RatingDAO struct {
	db *gorm.DB
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{
		db: db,
	}
}

// Upsert inserts the rating, or overwrites the existing rating for the same
// (event_id, user_id) in a single statement. Exactly one row exists per pair
// afterwards.
func (d *RatingDAO) Upsert(ctx context.Context, rating EventRating) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating"}),
		}).
		Create(&rating)

	return result.Error
}

// AverageByEventID computes the arithmetic mean of the event's ratings.
// An event with no ratings averages to 0.
func (d *RatingDAO) AverageByEventID(ctx context.Context, eventID uint) (float64, error) {
	var average float64

	result := d.db.WithContext(ctx).
		Model(&EventRating{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("event_id = ?", eventID).
		Scan(&average)
	if result.Error != nil {
		return 0, result.Error
	}

	return average, nil
}

func (d *RatingDAO) FindByEventID(ctx context.Context, eventID uint) ([]EventRating, error) {
	ratings := make([]EventRating, 0)

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("user_id").
		Find(&ratings)
	if result.Error != nil {
		return nil, result.Error
	}

	return ratings, nil
}
