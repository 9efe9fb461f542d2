package challenge

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
	GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error)
	FindByChallengeToken(ctx context.Context, token string) (*models.Fixture, error)
	Create(ctx context.Context, fixture models.Fixture) (*models.Fixture, error)
	Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error)
	Delete(ctx context.Context, id uint) error
}

type PairResolver interface {
	LockPair(ctx context.Context, fixtureID uint) (*models.FixturePair, error)
}

type Notifier interface {
	NotifyTeamAdmins(ctx context.Context, teamIDs []uint, notification models.Notification)
	NotifyAttendees(ctx context.Context, fixtureIDs []uint, notification models.Notification)
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent)
}

type TokenGenerator interface {
	Generate() (string, error)
}

type Clock interface {
	Now() time.Time
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
