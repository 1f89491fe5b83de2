package main

import (
	"context"
	"log"
	"os"

	"github.com/Yakunat/the5quad-bot/internal/adapters/telegram"
	"github.com/Yakunat/the5quad-bot/internal/config"
	"github.com/Yakunat/the5quad-bot/internal/infrastructure/database"
	"github.com/Yakunat/the5quad-bot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	eventRepo := database.NewEventRepository(pool)
	registrationRepo := database.NewRegistrationRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	bot, err := telegram.NewBot(cfg, eventRepo, registrationRepo, translator)
	if err != nil {
		log.Fatalf("❌ Bot initialization error: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot stopped with error: %v", err)
		os.Exit(1)
	}
}
