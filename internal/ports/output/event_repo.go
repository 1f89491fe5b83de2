package output

import (
	"context"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	FindActive(ctx context.Context) ([]entities.Event, error)
	Cancel(ctx context.Context, id int64) error
}
