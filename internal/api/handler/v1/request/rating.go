package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RateEventRequest struct {
	EventID uint `json:"eventId"`
	UserID  uint `json:"userId"`
	Rating  int  `json:"rating"`
}

func (req *RateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}
