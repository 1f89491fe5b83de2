package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	pkgtelegram "github.com/Yakunat/the5quad-bot/pkg/telegram"
)

// sendEventCard sends the full event card with Join/Leave buttons.
func (h *Handler) sendEventCard(ctx context.Context, api *tgbotapi.BotAPI, chatID int64, locale string, eventID int64) {
	event, err := h.eventUseCase.GetEvent(ctx, eventID)
	if err != nil {
		log.Printf("❌ Failed to load event %d: %v", eventID, err)
		h.send(api, chatID, h.errorMessage(locale, err))
		return
	}
	main, reserve, err := h.rosterUseCase.EventRoster(ctx, eventID)
	if err != nil {
		log.Printf("❌ Failed to load roster for event %d: %v", eventID, err)
		h.send(api, chatID, h.errorMessage(locale, err))
		return
	}
	text := h.renderEventCard(locale, event, main, reserve)
	h.sendWithKeyboard(api, chatID, text, h.eventKeyboard(locale, eventID))
}

func (h *Handler) renderEventCard(locale string, event *entities.Event, main, reserve []entities.Registration) string {
	var b strings.Builder
	b.WriteString(h.translator.T(locale, "card.title", map[string]any{"EventID": event.ID}))
	b.WriteString("\n📅 " + pkgtelegram.FormatEventDateTime(event.ScheduledAt) + "\n")
	if event.Description != "" {
		b.WriteString("📝 " + escape(event.Description) + "\n")
	}

	b.WriteString("\n" + h.translator.T(locale, "card.players", map[string]any{
		"Count": len(main),
		"Max":   event.MaxPlayers,
	}) + "\n")
	if len(main) == 0 {
		b.WriteString(h.translator.T(locale, "card.no_players", nil) + "\n")
	}
	for i := range main {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escape(main[i].DisplayName()))
	}

	if len(reserve) > 0 {
		b.WriteString("\n" + h.translator.T(locale, "card.reserve", map[string]any{"Count": len(reserve)}) + "\n")
		for i := range reserve {
			fmt.Fprintf(&b, "%d. %s\n", i+1, escape(reserve[i].DisplayName()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderEventsList renders the compact multi-event overview.
func (h *Handler) renderEventsList(ctx context.Context, locale string, events []entities.Event) string {
	lines := []string{h.translator.T(locale, "events.header", nil), ""}
	for i := range events {
		event := &events[i]
		lines = append(lines, fmt.Sprintf("#%d • %s", event.ID, pkgtelegram.FormatEventDateTime(event.ScheduledAt)))

		main, reserve, err := h.rosterUseCase.EventRoster(ctx, event.ID)
		if err != nil {
			log.Printf("❌ Failed to load roster for event %d: %v", event.ID, err)
		} else if len(reserve) > 0 {
			lines = append(lines, fmt.Sprintf("👥 %d/%d (+%d)", len(main), event.MaxPlayers, len(reserve)))
		} else {
			lines = append(lines, fmt.Sprintf("👥 %d/%d", len(main), event.MaxPlayers))
		}
		if event.Description != "" {
			lines = append(lines, "📝 "+escape(truncate(event.Description, 100)))
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (h *Handler) renderUserStatus(locale string, statuses []entities.UserStatus) string {
	var b strings.Builder
	b.WriteString(h.translator.T(locale, "mystatus.header", nil) + "\n\n")
	for _, st := range statuses {
		emoji, key := "✅", "mystatus.main"
		if st.List == domain.ListReserve {
			emoji, key = "⏳", "mystatus.reserve"
		}
		fmt.Fprintf(&b, "%s <b>Event %d</b>\n", emoji, st.EventID)
		fmt.Fprintf(&b, "📅 %s\n", pkgtelegram.FormatEventDateTime(st.ScheduledAt))
		fmt.Fprintf(&b, "📍 %s\n\n", h.translator.T(locale, key, nil))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *Handler) renderTeams(locale string, eventID int64, teamA, teamB []entities.Registration) string {
	var b strings.Builder
	b.WriteString(h.translator.T(locale, "teams.header", map[string]any{"EventID": eventID}) + "\n\n")
	b.WriteString(h.translator.T(locale, "teams.team_a", map[string]any{"Count": len(teamA)}) + "\n")
	for i := range teamA {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escape(teamA[i].DisplayName()))
	}
	b.WriteString("\n" + h.translator.T(locale, "teams.team_b", map[string]any{"Count": len(teamB)}) + "\n")
	for i := range teamB {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escape(teamB[i].DisplayName()))
	}
	b.WriteString("\n" + h.translator.T(locale, "teams.footer", nil))
	return b.String()
}

// eventKeyboard builds the Join/Leave buttons of an event card.
func (h *Handler) eventKeyboard(locale string, eventID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(h.translator.T(locale, "button.join", nil), fmt.Sprintf("join_%d", eventID)),
			tgbotapi.NewInlineKeyboardButtonData(h.translator.T(locale, "button.leave", nil), fmt.Sprintf("leave_%d", eventID)),
		),
	)
}

// eventsListKeyboard builds Details buttons for the compact list, two per row.
func (h *Handler) eventsListKeyboard(locale string, events []entities.Event) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i := range events {
		label := h.translator.T(locale, "button.details", map[string]any{"EventID": events[i].ID})
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("view_%d", events[i].ID)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-1]) + "…"
}
