package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

// RosterService maintains the main and reserve lists of an event.
type RosterService struct {
	registrationRepo output.RegistrationRepository
	eventRepo        output.EventRepository
	now              func() time.Time
}

func NewRosterService(
	registrationRepo output.RegistrationRepository,
	eventRepo output.EventRepository,
) *RosterService {
	return &RosterService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		now:              time.Now,
	}
}

// Join registers a user for an event. The user lands on the main list while
// it has free slots, otherwise on the reserve list. Returns the list joined.
func (s *RosterService) Join(ctx context.Context, eventID, userID int64, username, firstName string) (string, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if event.IsCancelled() {
		return "", domain.ErrEventCancelled
	}
	existing, err := s.registrationRepo.FindActiveByEventIDAndUserID(ctx, eventID, userID)
	if err == nil && existing != nil {
		return "", domain.ErrAlreadyRegistered
	}
	mainCount, err := s.registrationRepo.CountActiveByEventIDAndList(ctx, eventID, domain.ListMain)
	if err != nil {
		return "", fmt.Errorf("count main list: %w", err)
	}
	list := domain.ListMain
	if int(mainCount) >= event.MaxPlayers {
		list = domain.ListReserve
	}
	registration := &entities.Registration{
		EventID:   eventID,
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		List:      list,
		Status:    domain.RegistrationActive,
		JoinedAt:  s.now(),
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return "", fmt.Errorf("create registration: %w", err)
	}
	return list, nil
}

// Leave removes a user from whichever list holds them. When a main-list slot
// frees up and the reserve list is non-empty, the earliest reserve entrant is
// promoted; the promoted registration is returned so the caller can notify
// the player, or nil when nobody was promoted.
func (s *RosterService) Leave(ctx context.Context, eventID, userID int64) (*entities.Registration, error) {
	registration, err := s.registrationRepo.FindActiveByEventIDAndUserID(ctx, eventID, userID)
	if err != nil || registration == nil {
		return nil, domain.ErrNotRegistered
	}
	if err := s.registrationRepo.Cancel(ctx, registration.ID); err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}
	if registration.List != domain.ListMain {
		return nil, nil
	}
	reserve, err := s.registrationRepo.FindActiveByEventIDAndList(ctx, eventID, domain.ListReserve)
	if err != nil {
		return nil, fmt.Errorf("find reserve list: %w", err)
	}
	if len(reserve) == 0 {
		return nil, nil
	}
	promoted := reserve[0]
	if err := s.registrationRepo.UpdateList(ctx, promoted.ID, domain.ListMain); err != nil {
		return nil, fmt.Errorf("promote registration: %w", err)
	}
	promoted.List = domain.ListMain
	return &promoted, nil
}

// EventRoster returns both lists of an event in joined order.
func (s *RosterService) EventRoster(ctx context.Context, eventID int64) (main, reserve []entities.Registration, err error) {
	main, err = s.registrationRepo.FindActiveByEventIDAndList(ctx, eventID, domain.ListMain)
	if err != nil {
		return nil, nil, fmt.Errorf("find main list: %w", err)
	}
	reserve, err = s.registrationRepo.FindActiveByEventIDAndList(ctx, eventID, domain.ListReserve)
	if err != nil {
		return nil, nil, fmt.Errorf("find reserve list: %w", err)
	}
	return main, reserve, nil
}

// UserStatus returns the caller's active registrations across active events.
func (s *RosterService) UserStatus(ctx context.Context, userID int64) ([]entities.UserStatus, error) {
	return s.registrationRepo.FindStatusByUserID(ctx, userID)
}
