package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Organizer   string    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	events := make([]Event, 0)

	result := d.db.WithContext(ctx).Order("id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// Update replaces all five business fields of the event in a single statement.
// ErrEventNotFound is returned when no row matched the id.
func (d *EventDAO) Update(ctx context.Context, event Event) error {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
		"name":        event.Name,
		"description": event.Description,
		"date":        event.Date,
		"location":    event.Location,
		"organizer":   event.Organizer,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete succeeds regardless of whether a row matched.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)

	return result.Error
}
