package telegram

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Yakunat/the5quad-bot/internal/application"
	"github.com/Yakunat/the5quad-bot/internal/config"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

// Bot is the Telegram adapter.
type Bot struct {
	api     *tgbotapi.BotAPI
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	eventRepo output.EventRepository,
	registrationRepo output.RegistrationRepository,
	translator output.T,
) (*Bot, error) {
	eventUC := application.NewEventService(eventRepo)
	rosterUC := application.NewRosterService(registrationRepo, eventRepo)
	teamUC := application.NewTeamService(registrationRepo, eventRepo, nil)

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create telegram session: %w", err)
	}

	handler := NewHandler(eventUC, rosterUC, teamUC, translator, cfg.AdminIDs)

	return &Bot{
		api:     api,
		config:  cfg,
		handler: handler,
	}, nil
}

// Start runs the long-polling update loop until interrupted. Updates are
// handled one at a time, so each command is a sequential transaction against
// the store.
func (b *Bot) Start() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Get started with the bot"},
		tgbotapi.BotCommand{Command: "help", Description: "Show all commands"},
		tgbotapi.BotCommand{Command: "events", Description: "Show upcoming events"},
		tgbotapi.BotCommand{Command: "mystatus", Description: "Check your registrations"},
		tgbotapi.BotCommand{Command: "join", Description: "Join an event by ID"},
		tgbotapi.BotCommand{Command: "leave", Description: "Leave an event by ID"},
	)
	if _, err := b.api.Request(commands); err != nil {
		log.Printf("⚠️ Failed to register bot commands: %v", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Printf("⚽ Bot @%s is running! Press CTRL+C to quit.", b.api.Self.UserName)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-stop:
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	ctx := context.Background()
	switch {
	case update.Message != nil:
		b.handler.HandleMessage(ctx, b.api, update.Message)
	case update.CallbackQuery != nil:
		b.handler.HandleCallback(ctx, b.api, update.CallbackQuery)
	}
}
