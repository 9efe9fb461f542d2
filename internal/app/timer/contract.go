package timer

import (
	"context"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/rs/zerolog"
)

type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type FixtureRepository interface {
	Get(ctx context.Context, id uint) (*models.Fixture, error)
	Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error)
}

type PairResolver interface {
	LockPair(ctx context.Context, fixtureID uint) (*models.FixturePair, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent)
}

type Clock interface {
	Now() time.Time
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
