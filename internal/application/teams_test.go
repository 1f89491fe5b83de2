package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

func newTeamFixture(t *testing.T, players int, seed int64) (*TeamService, int64) {
	t.Helper()
	eventRepo := newFakeEventRepo()
	registrationRepo := newFakeRegistrationRepo(eventRepo)
	event := &entities.Event{
		ScheduledAt: time.Now().Add(24 * time.Hour),
		MaxPlayers:  50,
		Status:      domain.EventActive,
	}
	ctx := context.Background()
	if err := eventRepo.Create(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	roster := NewRosterService(registrationRepo, eventRepo)
	for userID := int64(1); userID <= int64(players); userID++ {
		if _, err := roster.Join(ctx, event.ID, userID, fmt.Sprintf("user%d", userID), ""); err != nil {
			t.Fatalf("join user %d: %v", userID, err)
		}
	}
	return NewTeamService(registrationRepo, eventRepo, rand.New(rand.NewSource(seed))), event.ID
}

func TestRandomizeSplitsEvenly(t *testing.T) {
	for players := 2; players <= 11; players++ {
		t.Run(fmt.Sprintf("%d players", players), func(t *testing.T) {
			svc, eventID := newTeamFixture(t, players, 1)

			teamA, teamB, err := svc.Randomize(context.Background(), eventID)
			if err != nil {
				t.Fatalf("randomize: %v", err)
			}
			if len(teamA)+len(teamB) != players {
				t.Fatalf("team sizes %d+%d, want total %d", len(teamA), len(teamB), players)
			}
			if diff := len(teamA) - len(teamB); diff < 0 || diff > 1 {
				t.Fatalf("sizes %d vs %d: first team must have the extra player at most", len(teamA), len(teamB))
			}

			seen := make(map[int64]bool)
			for _, reg := range append(append([]entities.Registration{}, teamA...), teamB...) {
				if seen[reg.UserID] {
					t.Fatalf("user %d assigned to both teams", reg.UserID)
				}
				seen[reg.UserID] = true
			}
			for userID := int64(1); userID <= int64(players); userID++ {
				if !seen[userID] {
					t.Fatalf("user %d missing from teams", userID)
				}
			}
		})
	}
}

func TestRandomizeIsDeterministicForSameSeed(t *testing.T) {
	first, eventA := newTeamFixture(t, 8, 42)
	second, eventB := newTeamFixture(t, 8, 42)
	ctx := context.Background()

	a1, b1, err := first.Randomize(ctx, eventA)
	if err != nil {
		t.Fatalf("randomize: %v", err)
	}
	a2, b2, err := second.Randomize(ctx, eventB)
	if err != nil {
		t.Fatalf("randomize: %v", err)
	}
	for i := range a1 {
		if a1[i].UserID != a2[i].UserID {
			t.Fatalf("team A diverged at %d: %d vs %d", i, a1[i].UserID, a2[i].UserID)
		}
	}
	for i := range b1 {
		if b1[i].UserID != b2[i].UserID {
			t.Fatalf("team B diverged at %d: %d vs %d", i, b1[i].UserID, b2[i].UserID)
		}
	}
}

func TestRandomizeRequiresTwoPlayers(t *testing.T) {
	for _, players := range []int{0, 1} {
		svc, eventID := newTeamFixture(t, players, 1)
		_, _, err := svc.Randomize(context.Background(), eventID)
		if !errors.Is(err, domain.ErrNotEnoughPlayers) {
			t.Fatalf("%d players: got %v, want ErrNotEnoughPlayers", players, err)
		}
	}
}

func TestRandomizeIgnoresReserveList(t *testing.T) {
	eventRepo := newFakeEventRepo()
	registrationRepo := newFakeRegistrationRepo(eventRepo)
	event := &entities.Event{
		ScheduledAt: time.Now().Add(24 * time.Hour),
		MaxPlayers:  2,
		Status:      domain.EventActive,
	}
	ctx := context.Background()
	if err := eventRepo.Create(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	roster := NewRosterService(registrationRepo, eventRepo)
	for userID := int64(1); userID <= 4; userID++ {
		if _, err := roster.Join(ctx, event.ID, userID, "", ""); err != nil {
			t.Fatalf("join user %d: %v", userID, err)
		}
	}

	svc := NewTeamService(registrationRepo, eventRepo, rand.New(rand.NewSource(1)))
	teamA, teamB, err := svc.Randomize(ctx, event.ID)
	if err != nil {
		t.Fatalf("randomize: %v", err)
	}
	for _, reg := range append(append([]entities.Registration{}, teamA...), teamB...) {
		if reg.UserID > 2 {
			t.Fatalf("reserve player %d ended up in a team", reg.UserID)
		}
	}
}

func TestRandomizeUnknownEvent(t *testing.T) {
	svc, _ := newTeamFixture(t, 4, 1)
	if _, _, err := svc.Randomize(context.Background(), 999); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("got %v, want ErrEventNotFound", err)
	}
}
