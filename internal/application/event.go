package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

// Capacity bounds for an event's main list.
const (
	MinPlayers = 2
	MaxPlayers = 50
)

type EventService struct {
	eventRepo output.EventRepository
	now       func() time.Time
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, scheduledAt time.Time, maxPlayers int, description string, createdBy int64) (*entities.Event, error) {
	if maxPlayers < MinPlayers || maxPlayers > MaxPlayers {
		return nil, domain.ErrInvalidCapacity
	}
	if scheduledAt.Before(s.now()) {
		return nil, domain.ErrDateTimeInPast
	}
	event := &entities.Event{
		ScheduledAt: scheduledAt,
		MaxPlayers:  maxPlayers,
		Description: description,
		CreatedBy:   createdBy,
		Status:      domain.EventActive,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// ListUpcoming returns active events ordered by scheduled time.
func (s *EventService) ListUpcoming(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.FindActive(ctx)
}

func (s *EventService) CancelEvent(ctx context.Context, id int64) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Status == domain.EventCancelled {
		return domain.ErrEventCancelled
	}
	return s.eventRepo.Cancel(ctx, id)
}
