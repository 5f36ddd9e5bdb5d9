package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evently/evently-api/internal/api/handler/v1/request"
	"github.com/evently/evently-api/internal/api/handler/v1/response"
	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/service"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, id uint) error
	RegisterForEvent(ctx context.Context, eventID, userID uint) (domain.Registration, error)
	DeregisterFromEvent(ctx context.Context, eventID, userID uint) error
	GetUserNotifications(ctx context.Context, userID uint) ([]string, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "event fields"
// @Success      201      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Organizer:   req.Organizer,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreatedResponse{ID: created.ID})
}

// HandleUpdateEvent godoc
// @Summary      Update an event and notify registered users
// @Description  Replaces all event fields, then creates one notification per registered user.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event ID"
// @Param        request  body      request.UpdateEventRequest  true  "event fields"
// @Success      200      {object}  response.EventUpdatedResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	err = h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:          uint(eventID),
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Organizer:   req.Organizer,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventUpdatedResponse{
		Message: "Event updated and notifications sent.",
		ID:      uint(eventID),
	})
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), uint(eventID)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Event deleted successfully."})
}

// HandleRegister godoc
// @Summary      Register a user for an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "registration"
// @Success      201      {object}  response.RegistrationResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/register [post]
func (h *EventHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.RegisterForEvent(ctx.Request.Context(), req.EventID, req.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleRegister -> h.svc.RegisterForEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.RegistrationResponse{
		Message: "Registration successful.",
		ID:      registration.ID,
	})
}

// HandleDeregister godoc
// @Summary      Deregister a user from an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                        true  "event ID"
// @Param        request  body      request.DeregisterRequest  true  "user"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/deregister/{eventID} [post]
func (h *EventHandler) HandleDeregister(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.DeregisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeregisterFromEvent(ctx.Request.Context(), uint(eventID), req.UserID); err != nil {
		err = fmt.Errorf("v1.HandleDeregister -> h.svc.DeregisterFromEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Deregistration successful."})
}

// HandleGetNotifications godoc
// @Summary      Get a user's notifications
// @Tags         events
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {array}   string
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /events/notifications/{userID} [get]
func (h *EventHandler) HandleGetNotifications(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID: %w", err)))
		return
	}

	messages, err := h.svc.GetUserNotifications(ctx.Request.Context(), uint(userID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetNotifications -> h.svc.GetUserNotifications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, messages)
}
