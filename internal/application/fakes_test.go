package application

import (
	"context"
	"sort"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

// fakeEventRepo is an in-memory output.EventRepository.
type fakeEventRepo struct {
	events map[int64]*entities.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*entities.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entities.Event) error {
	f.nextID++
	event.ID = f.nextID
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) FindActive(ctx context.Context) ([]entities.Event, error) {
	var out []entities.Event
	for _, event := range f.events {
		if event.Status == domain.EventActive {
			out = append(out, *event)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeEventRepo) Cancel(ctx context.Context, id int64) error {
	event, ok := f.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.Status = domain.EventCancelled
	return nil
}

// fakeRegistrationRepo is an in-memory output.RegistrationRepository.
// Registrations keep insertion order, which stands in for joined_at ordering.
type fakeRegistrationRepo struct {
	regs   []*entities.Registration
	events *fakeEventRepo
	nextID int64
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{events: events}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, registration *entities.Registration) error {
	f.nextID++
	registration.ID = f.nextID
	stored := *registration
	f.regs = append(f.regs, &stored)
	return nil
}

func (f *fakeRegistrationRepo) FindActiveByEventIDAndUserID(ctx context.Context, eventID, userID int64) (*entities.Registration, error) {
	for _, reg := range f.regs {
		if reg.EventID == eventID && reg.UserID == userID && reg.Status == domain.RegistrationActive {
			copied := *reg
			return &copied, nil
		}
	}
	return nil, domain.ErrNotRegistered
}

func (f *fakeRegistrationRepo) FindActiveByEventIDAndList(ctx context.Context, eventID int64, list string) ([]entities.Registration, error) {
	var out []entities.Registration
	for _, reg := range f.regs {
		if reg.EventID == eventID && reg.List == list && reg.Status == domain.RegistrationActive {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) CountActiveByEventIDAndList(ctx context.Context, eventID int64, list string) (int64, error) {
	regs, _ := f.FindActiveByEventIDAndList(ctx, eventID, list)
	return int64(len(regs)), nil
}

func (f *fakeRegistrationRepo) FindStatusByUserID(ctx context.Context, userID int64) ([]entities.UserStatus, error) {
	var out []entities.UserStatus
	for _, reg := range f.regs {
		if reg.UserID != userID || reg.Status != domain.RegistrationActive {
			continue
		}
		event, ok := f.events.events[reg.EventID]
		if !ok || event.Status != domain.EventActive {
			continue
		}
		out = append(out, entities.UserStatus{
			EventID:     event.ID,
			ScheduledAt: event.ScheduledAt,
			List:        reg.List,
		})
	}
	return out, nil
}

func (f *fakeRegistrationRepo) UpdateList(ctx context.Context, id int64, list string) error {
	for _, reg := range f.regs {
		if reg.ID == id {
			reg.List = list
			return nil
		}
	}
	return domain.ErrNotRegistered
}

func (f *fakeRegistrationRepo) Cancel(ctx context.Context, id int64) error {
	for _, reg := range f.regs {
		if reg.ID == id {
			reg.Status = domain.RegistrationCancelled
			return nil
		}
	}
	return domain.ErrNotRegistered
}
