package service

import (
	"context"
	"fmt"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository"
)

var (
	ErrCommentNotFound = repository.ErrCommentNotFound
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.EventComment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) *CommentService {
	return &CommentService{
		repo: repo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CommentService) GetEventComments(ctx context.Context, eventID uint) ([]domain.EventComment, error) {
	comments, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return comments, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
