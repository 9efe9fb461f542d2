package referee

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
}

type RefereeRepository interface {
	Create(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error)
	Get(ctx context.Context, id uint) (*models.RefereeAssignment, error)
	GetForUpdate(ctx context.Context, id uint) (*models.RefereeAssignment, error)
	Update(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error)
}

type Notifier interface {
	NotifyTeamAdmins(ctx context.Context, teamIDs []uint, notification models.Notification)
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
