package response

type EventRatingResponse struct {
	AverageRating float64 `json:"averageRating"`
}
