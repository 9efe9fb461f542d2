package pairing

import (
	"context"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/rs/zerolog"
)

type FixtureRepository interface {
	Get(ctx context.Context, id uint) (*models.Fixture, error)
	GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error)
	FindByLinkedFixtureID(ctx context.Context, linkedFixtureID uint) (*models.Fixture, error)
	Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
