package domain

import "time"

// Notification is an advisory message for a user. Rows are created only as a
// side effect of an event update and are never mutated afterwards.
type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
