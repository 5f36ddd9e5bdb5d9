package domain

import "time"

type Comment struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	UserID    uint      `json:"user_id"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

// EventComment is a comment joined with the author's username, as rendered on
// an event page.
type EventComment struct {
	ID        uint      `json:"id"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
}
