package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventCancelled    = errors.New("event is cancelled")
	ErrDateTimeInPast    = errors.New("date and time must be in the future")
	ErrInvalidCapacity   = errors.New("max players must be between 2 and 50")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
	ErrNotEnoughPlayers  = errors.New("need at least 2 players to create teams")
	ErrNotAdmin          = errors.New("only admins can perform this action")
)

// Code returns a stable identifier for a domain error, usable as an i18n key
// suffix. It returns "" for errors that are not domain errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrEventCancelled):
		return "event_cancelled"
	case errors.Is(err, ErrDateTimeInPast):
		return "datetime_in_past"
	case errors.Is(err, ErrInvalidCapacity):
		return "invalid_capacity"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, ErrNotEnoughPlayers):
		return "not_enough_players"
	case errors.Is(err, ErrNotAdmin):
		return "not_admin"
	default:
		return ""
	}
}
