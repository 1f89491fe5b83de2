package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	pkgtelegram "github.com/Yakunat/the5quad-bot/pkg/telegram"
)

// HandleMessage dispatches an incoming message to its command handler.
// Non-command messages are ignored.
func (h *Handler) HandleMessage(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	if msg.From == nil || !msg.IsCommand() {
		return
	}
	switch msg.Command() {
	case "start":
		h.handleStart(api, msg)
	case "help":
		h.handleHelp(api, msg)
	case "create_event":
		h.handleCreateEvent(ctx, api, msg)
	case "events":
		h.handleEvents(ctx, api, msg)
	case "mystatus":
		h.handleMyStatus(ctx, api, msg)
	case "join":
		h.handleJoin(ctx, api, msg)
	case "leave":
		h.handleLeave(ctx, api, msg)
	case "cancel_event":
		h.handleCancelEvent(ctx, api, msg)
	case "randomize_teams":
		h.handleRandomizeTeams(ctx, api, msg)
	default:
		h.send(api, msg.Chat.ID, h.translator.T(userLocale(msg.From), "unknown.command", nil))
	}
}

func (h *Handler) handleStart(api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	statusKey := "start.player"
	if h.isAdmin(msg.From.ID) {
		statusKey = "start.admin"
	}
	h.send(api, msg.Chat.ID, h.translator.T(locale, "start.welcome", map[string]any{
		"Name":   tgbotapi.EscapeText(tgbotapi.ModeHTML, msg.From.FirstName),
		"Status": h.translator.T(locale, statusKey, nil),
	}))
}

func (h *Handler) handleHelp(api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	h.send(api, msg.Chat.ID, h.translator.T(userLocale(msg.From), "help.text", nil))
}

func (h *Handler) handleCreateEvent(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	if !h.isAdmin(msg.From.ID) {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, domain.ErrNotAdmin))
		return
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 3 {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "create.usage", nil))
		return
	}
	scheduledAt, err := pkgtelegram.ParseEventDateTime(args[0], args[1])
	if err != nil {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "create.invalid_format", nil))
		return
	}
	maxPlayers, err := strconv.Atoi(args[2])
	if err != nil {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "create.invalid_format", nil))
		return
	}
	description := strings.Join(args[3:], " ")

	event, err := h.eventUseCase.CreateEvent(ctx, scheduledAt, maxPlayers, description, msg.From.ID)
	if err != nil {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	h.sendEventCard(ctx, api, msg.Chat.ID, locale, event.ID)
}

func (h *Handler) handleEvents(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	events, err := h.eventUseCase.ListUpcoming(ctx)
	if err != nil {
		log.Printf("❌ Failed to list events: %v", err)
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	if len(events) == 0 {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "events.none", nil))
		return
	}
	// A single event gets the full card with Join/Leave; several events get
	// a compact list with Details buttons.
	if len(events) == 1 {
		h.sendEventCard(ctx, api, msg.Chat.ID, locale, events[0].ID)
		return
	}
	text := h.renderEventsList(ctx, locale, events)
	h.sendWithKeyboard(api, msg.Chat.ID, text, h.eventsListKeyboard(locale, events))
}

func (h *Handler) handleMyStatus(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	statuses, err := h.rosterUseCase.UserStatus(ctx, msg.From.ID)
	if err != nil {
		log.Printf("❌ Failed to load user status (user=%d): %v", msg.From.ID, err)
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	if len(statuses) == 0 {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "mystatus.none", nil))
		return
	}
	h.send(api, msg.Chat.ID, h.renderUserStatus(locale, statuses))
}

func (h *Handler) handleJoin(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	eventID, ok := h.parseEventIDArg(api, msg, locale, "join.usage")
	if !ok {
		return
	}
	list, err := h.rosterUseCase.Join(ctx, eventID, msg.From.ID, msg.From.UserName, msg.From.FirstName)
	if err != nil {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	h.send(api, msg.Chat.ID, h.joinedMessage(locale, list, eventID))
	h.sendEventCard(ctx, api, msg.Chat.ID, locale, eventID)
}

func (h *Handler) handleLeave(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	eventID, ok := h.parseEventIDArg(api, msg, locale, "leave.usage")
	if !ok {
		return
	}
	promoted, err := h.rosterUseCase.Leave(ctx, eventID, msg.From.ID)
	if err != nil {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	h.send(api, msg.Chat.ID, h.translator.T(locale, "leave.ok", map[string]any{"EventID": eventID}))
	h.notifyPromoted(ctx, api, eventID, promoted)
	h.sendEventCard(ctx, api, msg.Chat.ID, locale, eventID)
}

func (h *Handler) handleCancelEvent(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	if !h.isAdmin(msg.From.ID) {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, domain.ErrNotAdmin))
		return
	}
	eventID, ok := h.parseEventIDArg(api, msg, locale, "cancel.usage")
	if !ok {
		return
	}
	if err := h.eventUseCase.CancelEvent(ctx, eventID); err != nil {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	h.send(api, msg.Chat.ID, h.translator.T(locale, "cancel.ok", map[string]any{"EventID": eventID}))
}

func (h *Handler) handleRandomizeTeams(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	locale := userLocale(msg.From)
	if !h.isAdmin(msg.From.ID) {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, domain.ErrNotAdmin))
		return
	}
	eventID, ok := h.parseEventIDArg(api, msg, locale, "randomize.usage")
	if !ok {
		return
	}
	teamA, teamB, err := h.teamUseCase.Randomize(ctx, eventID)
	if err != nil {
		h.send(api, msg.Chat.ID, h.errorMessage(locale, err))
		return
	}
	h.send(api, msg.Chat.ID, h.renderTeams(locale, eventID, teamA, teamB))
}

// parseEventIDArg extracts the single <event_id> argument of a command,
// replying with the usage text or a validation error when it is missing or
// not a number.
func (h *Handler) parseEventIDArg(api *tgbotapi.BotAPI, msg *tgbotapi.Message, locale, usageKey string) (int64, bool) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 1 {
		h.send(api, msg.Chat.ID, h.translator.T(locale, usageKey, nil))
		return 0, false
	}
	eventID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		h.send(api, msg.Chat.ID, h.translator.T(locale, "error.bad_event_id", nil))
		return 0, false
	}
	return eventID, true
}

func (h *Handler) joinedMessage(locale, list string, eventID int64) string {
	key := "join.main"
	if list == domain.ListReserve {
		key = "join.reserve"
	}
	return h.translator.T(locale, key, map[string]any{"EventID": eventID})
}
