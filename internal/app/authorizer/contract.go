package authorizer

import (
	"context"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type FixtureRepository interface {
	Get(ctx context.Context, id uint) (*models.Fixture, error)
	FindByScoringToken(ctx context.Context, token string) (*models.Fixture, error)
}

type RosterRepository interface {
	ListAttendingUserIDs(ctx context.Context, fixtureID uint) ([]uint, error)
}

type Clock interface {
	Now() time.Time
}
