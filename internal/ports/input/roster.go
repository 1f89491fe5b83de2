package input

import (
	"context"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

type RosterUseCase interface {
	Join(ctx context.Context, eventID, userID int64, username, firstName string) (string, error)
	Leave(ctx context.Context, eventID, userID int64) (*entities.Registration, error)
	EventRoster(ctx context.Context, eventID int64) (main, reserve []entities.Registration, err error)
	UserStatus(ctx context.Context, userID int64) ([]entities.UserStatus, error)
}
