package response

type CommentCreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
