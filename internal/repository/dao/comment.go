package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

type Comment struct {
	ID uint `gorm:"primaryKey"`

	EventID uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null"`
	Comment string `gorm:"not null"`

	Timestamp time.Time `gorm:"not null;autoCreateTime"`

	Event Event `gorm:"foreignKey:EventID"`
	User  User  `gorm:"foreignKey:UserID"`
}

// EventComment is the comment row joined with the author's username.
type EventComment struct {
	ID        uint
	Comment   string
	Timestamp time.Time
	Username  string
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	return comment, nil
}

// FindByEventID returns the event's comments with the author's username,
// ordered by insertion.
func (d *CommentDAO) FindByEventID(ctx context.Context, eventID uint) ([]EventComment, error) {
	comments := make([]EventComment, 0)

	result := d.db.WithContext(ctx).
		Model(&Comment{}).
		Select("comments.id, comments.comment, comments.timestamp, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.event_id = ?", eventID).
		Order("comments.id").
		Scan(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	return comments, nil
}

func (d *CommentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Comment{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
