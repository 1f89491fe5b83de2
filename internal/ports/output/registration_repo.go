package output

import (
	"context"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entities.Registration) error
	FindActiveByEventIDAndUserID(ctx context.Context, eventID, userID int64) (*entities.Registration, error)
	FindActiveByEventIDAndList(ctx context.Context, eventID int64, list string) ([]entities.Registration, error)
	CountActiveByEventIDAndList(ctx context.Context, eventID int64, list string) (int64, error)
	FindStatusByUserID(ctx context.Context, userID int64) ([]entities.UserStatus, error)
	UpdateList(ctx context.Context, id int64, list string) error
	Cancel(ctx context.Context, id int64) error
}
