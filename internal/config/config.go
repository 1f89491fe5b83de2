package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	AdminIDs       map[int64]struct{}
	DatabaseURL    string
	MigrationsPath string
	DefaultLocale  string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("BOT_TOKEN"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
	}

	admins, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = admins

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseAdminIDs parses a comma-separated list of Telegram user ids.
func parseAdminIDs(raw string) (map[int64]struct{}, error) {
	admins := make(map[int64]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: ADMIN_IDS contains %q, expected numeric Telegram ids", part)
		}
		admins[id] = struct{}{}
	}
	return admins, nil
}

// validate applies all business rules to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: BOT_TOKEN is required and cannot be empty")
	}

	if len(c.AdminIDs) == 0 {
		log.Println("⚠️ No admin IDs configured: nobody will be able to create events.")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful default for local development when DATABASE_URL is not set.
		c.DatabaseURL = "postgres://localhost:5432/the5quad?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	return nil
}

// IsAdmin reports whether the given Telegram user id is a bot admin.
func (c *Config) IsAdmin(userID int64) bool {
	_, ok := c.AdminIDs[userID]
	return ok
}
