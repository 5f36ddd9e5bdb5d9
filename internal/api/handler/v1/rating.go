package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evently/evently-api/internal/api/handler/v1/request"
	"github.com/evently/evently-api/internal/api/handler/v1/response"
	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/service"
)

type RatingService interface {
	RateEvent(ctx context.Context, rating domain.EventRating) error
	GetEventRating(ctx context.Context, eventID uint) (float64, error)
}

type RatingHandler struct {
	svc RatingService
}

func NewRatingHandler(svc RatingService) *RatingHandler {
	return &RatingHandler{
		svc: svc,
	}
}

// HandleRateEvent godoc
// @Summary      Rate an event
// @Description  Stores the user's rating, overwriting any previous rating by the same user.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        request  body      request.RateEventRequest  true  "rating between 1 and 5"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/rate [post]
func (h *RatingHandler) HandleRateEvent(ctx *gin.Context) {
	var req request.RateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.RateEvent(ctx.Request.Context(), domain.EventRating{
		EventID: req.EventID,
		UserID:  req.UserID,
		Rating:  req.Rating,
	})
	if err != nil {
		if errors.Is(err, service.ErrRatingOutOfRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleRateEvent -> h.svc.RateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Rating saved."})
}

// HandleGetEventRating godoc
// @Summary      Get an event's average rating
// @Description  Returns the arithmetic mean of all ratings, or 0 when the event has none.
// @Tags         ratings
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.EventRatingResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/rating [get]
func (h *RatingHandler) HandleGetEventRating(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	average, err := h.svc.GetEventRating(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEventRating -> h.svc.GetEventRating -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventRatingResponse{AverageRating: average})
}
