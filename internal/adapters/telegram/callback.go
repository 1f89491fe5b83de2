package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	pkgtelegram "github.com/Yakunat/the5quad-bot/pkg/telegram"
)

// HandleCallback handles inline button presses. Callback data is
// "<action>_<event_id>" with actions join, leave and view.
func (h *Handler) HandleCallback(ctx context.Context, api *tgbotapi.BotAPI, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	action, idStr, found := strings.Cut(cb.Data, "_")
	if !found {
		h.answer(api, cb.ID, "")
		return
	}
	eventID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.answer(api, cb.ID, "")
		return
	}
	locale := userLocale(cb.From)
	chatID := cb.Message.Chat.ID

	switch action {
	case "view":
		h.answer(api, cb.ID, "")
		h.sendEventCard(ctx, api, chatID, locale, eventID)
	case "join":
		list, err := h.rosterUseCase.Join(ctx, eventID, cb.From.ID, cb.From.UserName, cb.From.FirstName)
		if err != nil {
			h.alert(api, cb.ID, h.errorMessage(locale, err))
			return
		}
		h.answer(api, cb.ID, h.joinedMessage(locale, list, eventID))
		// Send the refreshed card as a new message instead of editing, so
		// the chat keeps a visible trail of roster changes.
		h.sendEventCard(ctx, api, chatID, locale, eventID)
	case "leave":
		promoted, err := h.rosterUseCase.Leave(ctx, eventID, cb.From.ID)
		if err != nil {
			h.alert(api, cb.ID, h.errorMessage(locale, err))
			return
		}
		h.answer(api, cb.ID, h.translator.T(locale, "leave.ok", map[string]any{"EventID": eventID}))
		h.notifyPromoted(ctx, api, eventID, promoted)
		h.sendEventCard(ctx, api, chatID, locale, eventID)
	default:
		h.answer(api, cb.ID, "")
	}
}

func (h *Handler) answer(api *tgbotapi.BotAPI, callbackID, text string) {
	if _, err := api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("❌ Failed to answer callback: %v", err)
	}
}

func (h *Handler) alert(api *tgbotapi.BotAPI, callbackID, text string) {
	if _, err := api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("❌ Failed to answer callback: %v", err)
	}
}

// notifyPromoted sends a best-effort private message to a player promoted
// from the reserve list. Delivery fails when the player never started the
// bot; that is logged and otherwise ignored.
func (h *Handler) notifyPromoted(ctx context.Context, api *tgbotapi.BotAPI, eventID int64, promoted *entities.Registration) {
	if promoted == nil {
		return
	}
	event, err := h.eventUseCase.GetEvent(ctx, eventID)
	if err != nil {
		log.Printf("❌ Failed to load event %d for promotion notice: %v", eventID, err)
		return
	}
	text := h.translator.T("", "leave.promoted", map[string]any{
		"When": pkgtelegram.FormatEventDateTime(event.ScheduledAt),
	})
	msg := tgbotapi.NewMessage(promoted.UserID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := api.Send(msg); err != nil {
		log.Printf("⚠️ Could not notify promoted player %d: %v", promoted.UserID, err)
	}
}
