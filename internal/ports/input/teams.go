package input

import (
	"context"

	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
)

type TeamUseCase interface {
	Randomize(ctx context.Context, eventID int64) (teamA, teamB []entities.Registration, err error)
}
