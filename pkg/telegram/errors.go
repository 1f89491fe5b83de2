package telegram

import "github.com/Yakunat/the5quad-bot/internal/domain"

// MessageKey maps an error to the i18n key of its user-facing message.
// Non-domain errors fall back to a generic message; the real cause is logged
// by the caller, never shown to the user.
func MessageKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "error." + code
	}
	return "error.generic"
}
