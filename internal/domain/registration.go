package domain

type Registration struct {
	ID      uint `json:"id"`
	EventID uint `json:"event_id"`
	UserID  uint `json:"user_id"`
}
