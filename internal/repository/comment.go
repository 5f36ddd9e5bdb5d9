package repository

import (
	"context"
	"fmt"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository/dao"
)

var (
	ErrCommentNotFound = dao.ErrCommentNotFound
)

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.EventComment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository struct {
	dao CommentDAO
}

func NewCommentRepository(dao CommentDAO) *CommentRepository {
	return &CommentRepository{
		dao: dao,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.Insert(ctx, dao.Comment{
		EventID: comment.EventID,
		UserID:  comment.UserID,
		Comment: comment.Comment,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Comment{
		ID:        created.ID,
		EventID:   created.EventID,
		UserID:    created.UserID,
		Comment:   created.Comment,
		Timestamp: created.Timestamp,
	}, nil
}

func (r *CommentRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.EventComment, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	comments := make([]domain.EventComment, 0, len(found))
	for _, comment := range found {
		comments = append(comments, domain.EventComment{
			ID:        comment.ID,
			Comment:   comment.Comment,
			Timestamp: comment.Timestamp,
			Username:  comment.Username,
		})
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
