package config

import (
	"strings"
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "123456", []int64{123456}, false},
		{"several with spaces", "1, 2 ,3", []int64{1, 2, 3}, false},
		{"trailing comma", "1,2,", []int64{1, 2}, false},
		{"non-numeric", "1,bob", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAdminIDs(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ids, want %d", len(got), len(tt.want))
			}
			for _, id := range tt.want {
				if _, ok := got[id]; !ok {
					t.Fatalf("missing id %d", id)
				}
			}
		})
	}
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := &Config{}
	err := cfg.validate()
	if err == nil || !strings.Contains(err.Error(), "BOT_TOKEN") {
		t.Fatalf("got %v, want BOT_TOKEN error", err)
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := &Config{Token: "123:abc"}
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.DatabaseURL == "" {
		t.Fatal("expected default DATABASE_URL")
	}
	if cfg.MigrationsPath != "migrations" {
		t.Fatalf("migrations path = %q, want %q", cfg.MigrationsPath, "migrations")
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("default locale = %q, want en", cfg.DefaultLocale)
	}
}

func TestValidateRejectsBadDatabaseURL(t *testing.T) {
	cfg := &Config{Token: "123:abc", DatabaseURL: "not-a-url"}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for DATABASE_URL without scheme or host")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "42,43")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/the5quad?sslmode=disable")
	t.Setenv("DEFAULT_LOCALE", "ru")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsAdmin(42) || !cfg.IsAdmin(43) {
		t.Fatal("expected 42 and 43 to be admins")
	}
	if cfg.IsAdmin(44) {
		t.Fatal("44 should not be an admin")
	}
	if cfg.DefaultLocale != "ru" {
		t.Fatalf("default locale = %q, want ru", cfg.DefaultLocale)
	}
}
