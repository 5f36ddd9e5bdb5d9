package dao

import (
	"context"

	"gorm.io/gorm"
)

// Registration links a user to an event. There is intentionally no uniqueness
// over (event_id, user_id): a user may hold more than one registration row for
// the same event.
type Registration struct {
	ID uint `gorm:"primaryKey"`

	EventID uint `gorm:"not null;index"`
	UserID  uint `gorm:"not null;index"`

	Event Event `gorm:"foreignKey:EventID"`
	User  User  `gorm:"foreignKey:UserID"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		return Registration{}, result.Error
	}

	return registration, nil
}

// Delete removes every registration matching (eventID, userID) and succeeds
// regardless of how many rows matched.
func (d *RegistrationDAO) Delete(ctx context.Context, eventID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&Registration{})

	return result.Error
}

// FindUserIDsByEventID returns the distinct ids of users registered to the
// event, so duplicate registrations notify a user only once.
func (d *RegistrationDAO) FindUserIDsByEventID(ctx context.Context, eventID uint) ([]uint, error) {
	userIDs := make([]uint, 0)

	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Distinct().
		Where("event_id = ?", eventID).
		Order("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, result.Error
	}

	return userIDs, nil
}
