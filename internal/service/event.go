package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id uint) error
	AddRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	RemoveRegistration(ctx context.Context, eventID, userID uint) error
	FindRegisteredUserIDs(ctx context.Context, eventID uint) ([]uint, error)
	AddNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	FindNotificationMessages(ctx context.Context, userID uint) ([]string, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateEvent replaces all fields of the event, then fans out one notification
// to every distinct user registered to it. The update itself is authoritative:
// when it matches no row, ErrEventNotFound is returned and no notification is
// written. Notification inserts are best effort; a failed insert is logged and
// skipped without affecting the update or the remaining inserts, and the call
// returns only after every insert has been attempted.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) error {
	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	userIDs, err := s.repo.FindRegisteredUserIDs(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("s.repo.FindRegisteredUserIDs -> %w", err)
	}

	message := fmt.Sprintf("Event %q has been updated.", event.Name)
	for _, userID := range userIDs {
		_, err := s.repo.AddNotification(ctx, domain.Notification{
			UserID:  userID,
			Message: message,
		})
		if err != nil {
			zap.L().Warn("failed to create notification",
				zap.Uint("event_id", event.ID),
				zap.Uint("user_id", userID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EventService) RegisterForEvent(ctx context.Context, eventID, userID uint) (domain.Registration, error) {
	registration, err := s.repo.AddRegistration(ctx, domain.Registration{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.AddRegistration -> %w", err)
	}

	return registration, nil
}

// DeregisterFromEvent is idempotent: deregistering a user who is not
// registered succeeds.
func (s *EventService) DeregisterFromEvent(ctx context.Context, eventID, userID uint) error {
	if err := s.repo.RemoveRegistration(ctx, eventID, userID); err != nil {
		return fmt.Errorf("s.repo.RemoveRegistration -> %w", err)
	}

	return nil
}

func (s *EventService) GetUserNotifications(ctx context.Context, userID uint) ([]string, error) {
	messages, err := s.repo.FindNotificationMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindNotificationMessages -> %w", err)
	}

	return messages, nil
}
