package matchevent

import (
	"context"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/rs/zerolog"
)

type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Authorizer interface {
	Authorize(ctx context.Context, access models.MatchAccess, caller models.Caller) (*models.Capability, error)
}

type FixtureRepository interface {
	Get(ctx context.Context, id uint) (*models.Fixture, error)
	GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error)
}

type GoalEventRepository interface {
	Create(ctx context.Context, goal models.GoalEvent) (*models.GoalEvent, error)
	Get(ctx context.Context, id uint) (*models.GoalEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.GoalEvent, error)
}

type CardEventRepository interface {
	Create(ctx context.Context, card models.CardEvent) (*models.CardEvent, error)
	Get(ctx context.Context, id uint) (*models.CardEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.CardEvent, error)
}

type SubstitutionEventRepository interface {
	Create(ctx context.Context, substitution models.SubstitutionEvent) (*models.SubstitutionEvent, error)
	Get(ctx context.Context, id uint) (*models.SubstitutionEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.SubstitutionEvent, error)
}

type ScoreEngine interface {
	Apply(ctx context.Context, fixtureID uint, linkedFixtureID *uint) (models.Score, error)
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
