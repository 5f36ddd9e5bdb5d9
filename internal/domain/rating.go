package domain

// EventRating holds one user's rating of one event. At most one rating exists
// per (event, user) pair; submitting again overwrites the previous value.
type EventRating struct {
	EventID uint `json:"event_id"`
	UserID  uint `json:"user_id"`
	Rating  int  `json:"rating"`
}
