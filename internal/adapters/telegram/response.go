package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	pkgtelegram "github.com/Yakunat/the5quad-bot/pkg/telegram"
)

// userLocale returns the Telegram language code for message translation.
// Empty is fine: the translator falls back to the default locale.
func userLocale(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	return user.LanguageCode
}

// send delivers an HTML-formatted message to a chat, logging failures.
func (h *Handler) send(api *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := api.Send(msg); err != nil {
		log.Printf("❌ Failed to send message (chat=%d): %v", chatID, err)
	}
}

// sendWithKeyboard delivers an HTML-formatted message with an inline keyboard.
func (h *Handler) sendWithKeyboard(api *tgbotapi.BotAPI, chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := api.Send(msg); err != nil {
		log.Printf("❌ Failed to send message (chat=%d): %v", chatID, err)
	}
}

// errorMessage resolves an error to its localized user-facing text.
func (h *Handler) errorMessage(locale string, err error) string {
	return h.translator.T(locale, pkgtelegram.MessageKey(err), nil)
}
