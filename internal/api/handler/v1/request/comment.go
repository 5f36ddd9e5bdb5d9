package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddCommentRequest struct {
	EventID uint   `json:"eventId"`
	UserID  uint   `json:"userId"`
	Comment string `json:"comment"`
}

func (req *AddCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Comment, validation.Required),
	)
}
