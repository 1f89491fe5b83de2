package input

import (
	"context"
	"time"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, scheduledAt time.Time, maxPlayers int, description string, createdBy int64) (*entities.Event, error)
	GetEvent(ctx context.Context, id int64) (*entities.Event, error)
	ListUpcoming(ctx context.Context) ([]entities.Event, error)
	CancelEvent(ctx context.Context, id int64) error
}
