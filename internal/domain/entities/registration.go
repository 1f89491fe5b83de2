package entities

import (
	"strconv"
	"time"
)

// Registration represents a user's registration for an event, on either the
// main list or the reserve list.
type Registration struct {
	ID        int64
	EventID   int64
	UserID    int64
	Username  string
	FirstName string
	List      string
	Status    string
	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName picks the best available name for rendering: first name, then
// username, then the raw Telegram id.
func (r *Registration) DisplayName() string {
	if r.FirstName != "" {
		return r.FirstName
	}
	if r.Username != "" {
		return r.Username
	}
	return strconv.FormatInt(r.UserID, 10)
}

// UserStatus pairs a registration with its event's schedule, for /mystatus.
type UserStatus struct {
	EventID     int64
	ScheduledAt time.Time
	List        string
}
