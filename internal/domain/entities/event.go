package entities

import "time"

// Event is a scheduled football game with a bounded main list.
type Event struct {
	ID          int64
	ScheduledAt time.Time
	MaxPlayers  int
	Description string
	CreatedBy   int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Event) IsCancelled() bool {
	return e.Status == "cancelled"
}
