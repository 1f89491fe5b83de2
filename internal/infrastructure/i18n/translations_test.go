package i18n

import (
	"strings"
	"testing"
)

func TestTranslatorRendersTemplates(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("en", "join.main", map[string]any{"EventID": 7})
	if !strings.Contains(got, "7") {
		t.Fatalf("expected event id in message, got %q", got)
	}
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en")

	// An unsupported locale falls back to the English catalog.
	got := tr.T("de", "events.none", nil)
	if !strings.Contains(got, "No upcoming events") {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestTranslatorUsesRequestedLocale(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("ru", "start.player", nil)
	if !strings.Contains(got, "Игрок") {
		t.Fatalf("expected russian message, got %q", got)
	}
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("en", "no.such.key", nil); got != "no.such.key" {
		t.Fatalf("got %q, want the key itself", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("empty key rendered as %q", got)
	}
}
