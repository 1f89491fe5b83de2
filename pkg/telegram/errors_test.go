package telegram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Yakunat/the5quad-bot/internal/domain"
)

func TestMessageKey(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrAlreadyRegistered, "error.already_registered"},
		{domain.ErrNotRegistered, "error.not_registered"},
		{domain.ErrNotEnoughPlayers, "error.not_enough_players"},
		{fmt.Errorf("join: %w", domain.ErrEventNotFound), "error.event_not_found"},
		{errors.New("connection refused"), "error.generic"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := MessageKey(tt.err); got != tt.want {
			t.Fatalf("MessageKey(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
