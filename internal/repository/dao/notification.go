package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint   `gorm:"not null;index"`
	Message string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

// FindMessagesByUserID returns the user's notification messages, oldest first.
func (d *NotificationDAO) FindMessagesByUserID(ctx context.Context, userID uint) ([]string, error) {
	messages := make([]string, 0)

	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("message", &messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// CountByUserID reports how many notifications have accumulated for a user.
func (d *NotificationDAO) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
