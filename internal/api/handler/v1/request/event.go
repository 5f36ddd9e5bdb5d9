package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date" format:"RFC3339"`
	Location    string `json:"location"`
	Organizer   string `json:"organizer"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Organizer, validation.Required),
	)
}

// UpdateEventRequest is a full replacement: every field, description included,
// must be present.
type UpdateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date" format:"RFC3339"`
	Location    string `json:"location"`
	Organizer   string `json:"organizer"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Organizer, validation.Required),
	)
}

type RegisterRequest struct {
	EventID uint `json:"eventId"`
	UserID  uint `json:"userId"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
	)
}

type DeregisterRequest struct {
	UserID uint `json:"userId"`
}

func (req *DeregisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
	)
}
