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

type CommentService interface {
	AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	GetEventComments(ctx context.Context, eventID uint) ([]domain.EventComment, error)
	DeleteComment(ctx context.Context, id uint) error
}

type CommentHandler struct {
	svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{
		svc: svc,
	}
}

// HandleAddComment godoc
// @Summary      Add a comment to an event
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request  body      request.AddCommentRequest  true  "comment"
// @Success      201      {object}  response.CommentCreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/comment [post]
func (h *CommentHandler) HandleAddComment(ctx *gin.Context) {
	var req request.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddComment(ctx.Request.Context(), domain.Comment{
		EventID: req.EventID,
		UserID:  req.UserID,
		Comment: req.Comment,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleAddComment -> h.svc.AddComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CommentCreatedResponse{
		ID:      created.ID,
		Message: "Comment added.",
	})
}

// HandleGetComments godoc
// @Summary      List an event's comments
// @Tags         comments
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.EventComment
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/comments/{eventID} [get]
func (h *CommentHandler) HandleGetComments(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	comments, err := h.svc.GetEventComments(ctx.Request.Context(), uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetComments -> h.svc.GetEventComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// HandleDeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        commentID  path      int  true  "comment ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /events/comments/{commentID} [delete]
func (h *CommentHandler) HandleDeleteComment(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Param("commentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid comment ID: %w", err)))
		return
	}

	if err := h.svc.DeleteComment(ctx.Request.Context(), uint(commentID)); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("comment", "ID", commentID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteComment -> h.svc.DeleteComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Comment deleted."})
}
