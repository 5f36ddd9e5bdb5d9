package response

type CreatedResponse struct {
	ID uint `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EventUpdatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type RegistrationResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
