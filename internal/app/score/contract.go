package score

import (
	"context"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type GoalEventRepository interface {
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.GoalEvent, error)
}

type FixtureRepository interface {
	UpdateScores(ctx context.Context, fixtureIDs []uint, score models.Score) error
}
