package domain

// Event statuses as stored in the database.
const (
	EventActive    = "active"
	EventCancelled = "cancelled"
)

// Registration lists. The main list is bounded by the event's max_players;
// the reserve list is unbounded and ordered first-come-first-served.
const (
	ListMain    = "main"
	ListReserve = "reserve"
)

// Registration statuses. Leaving an event cancels the row instead of
// deleting it, which keeps a history of who signed up.
const (
	RegistrationActive    = "active"
	RegistrationCancelled = "cancelled"
)
