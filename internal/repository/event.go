package repository

import (
	"context"
	"fmt"

	"github.com/evently/evently-api/internal/domain"
	"github.com/evently/evently-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) error
	Delete(ctx context.Context, id uint) error
}

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	Delete(ctx context.Context, eventID, userID uint) error
	FindUserIDsByEventID(ctx context.Context, eventID uint) ([]uint, error)
}

type NotificationDAO interface {
	Insert(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	FindMessagesByUserID(ctx context.Context, userID uint) ([]string, error)
}

type EventRepository struct {
	eventDAO        EventDAO
	registrationDAO RegistrationDAO
	notificationDAO NotificationDAO
}

func NewEventRepository(eventDAO EventDAO, registrationDAO RegistrationDAO, notificationDAO NotificationDAO) *EventRepository {
	return &EventRepository{
		eventDAO:        eventDAO,
		registrationDAO: registrationDAO,
		notificationDAO: notificationDAO,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.eventDAO.Insert(ctx, dao.Event{
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		Organizer:   event.Organizer,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.eventDAO.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.eventDAO.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, event := range found {
		events = append(events, r.daoToDomain(event))
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.eventDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) error {
	err := r.eventDAO.Update(ctx, dao.Event{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		Organizer:   event.Organizer,
	})
	if err != nil {
		return fmt.Errorf("r.eventDAO.Update -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.eventDAO.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.eventDAO.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) AddRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.registrationDAO.Insert(ctx, dao.Registration{
		EventID: registration.EventID,
		UserID:  registration.UserID,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.registrationDAO.Insert -> %w", err)
	}

	return domain.Registration{
		ID:      created.ID,
		EventID: created.EventID,
		UserID:  created.UserID,
	}, nil
}

func (r *EventRepository) RemoveRegistration(ctx context.Context, eventID, userID uint) error {
	if err := r.registrationDAO.Delete(ctx, eventID, userID); err != nil {
		return fmt.Errorf("r.registrationDAO.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) FindRegisteredUserIDs(ctx context.Context, eventID uint) ([]uint, error) {
	userIDs, err := r.registrationDAO.FindUserIDsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.registrationDAO.FindUserIDsByEventID -> %w", err)
	}

	return userIDs, nil
}

func (r *EventRepository) AddNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	created, err := r.notificationDAO.Insert(ctx, dao.Notification{
		UserID:  notification.UserID,
		Message: notification.Message,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.notificationDAO.Insert -> %w", err)
	}

	return domain.Notification{
		ID:        created.ID,
		UserID:    created.UserID,
		Message:   created.Message,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *EventRepository) FindNotificationMessages(ctx context.Context, userID uint) ([]string, error) {
	messages, err := r.notificationDAO.FindMessagesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.notificationDAO.FindMessagesByUserID -> %w", err)
	}

	return messages, nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Organizer:   e.Organizer,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
