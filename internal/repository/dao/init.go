package dao

import "gorm.io/gorm"

// InitTables creates the schema idempotently at startup.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&User{},
		&Registration{},
		&Notification{},
		&Comment{},
		&EventRating{},
	)
}
