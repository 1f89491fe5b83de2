package application

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

// TeamService splits an event's main list into two random teams.
type TeamService struct {
	registrationRepo output.RegistrationRepository
	eventRepo        output.EventRepository
	rng              *rand.Rand
}

// NewTeamService creates a TeamService. rng may be nil, in which case a
// time-seeded source is used; tests inject a fixed seed.
func NewTeamService(
	registrationRepo output.RegistrationRepository,
	eventRepo output.EventRepository,
	rng *rand.Rand,
) *TeamService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TeamService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		rng:              rng,
	}
}

// Randomize shuffles the event's main list and splits it into two teams whose
// sizes differ by at most one. On odd counts the first team gets the extra
// player.
func (s *TeamService) Randomize(ctx context.Context, eventID int64) (teamA, teamB []entities.Registration, err error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	if event.IsCancelled() {
		return nil, nil, domain.ErrEventCancelled
	}
	players, err := s.registrationRepo.FindActiveByEventIDAndList(ctx, eventID, domain.ListMain)
	if err != nil {
		return nil, nil, fmt.Errorf("find main list: %w", err)
	}
	if len(players) < MinPlayers {
		return nil, nil, domain.ErrNotEnoughPlayers
	}
	shuffled := make([]entities.Registration, len(players))
	copy(shuffled, players)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	half := (len(shuffled) + 1) / 2
	return shuffled[:half], shuffled[half:], nil
}
