package telegram

import (
	"github.com/Yakunat/the5quad-bot/internal/ports/input"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

// Handler handles Telegram updates using use cases.
type Handler struct {
	eventUseCase  input.EventUseCase
	rosterUseCase input.RosterUseCase
	teamUseCase   input.TeamUseCase
	translator    output.T
	admins        map[int64]struct{}
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	rosterUseCase input.RosterUseCase,
	teamUseCase input.TeamUseCase,
	translator output.T,
	admins map[int64]struct{},
) *Handler {
	return &Handler{
		eventUseCase:  eventUseCase,
		rosterUseCase: rosterUseCase,
		teamUseCase:   teamUseCase,
		translator:    translator,
		admins:        admins,
	}
}

func (h *Handler) isAdmin(userID int64) bool {
	_, ok := h.admins[userID]
	return ok
}
