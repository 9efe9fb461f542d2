package notification

import (
	"context"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/rs/zerolog"
)

type RosterRepository interface {
	ListAttendingUserIDs(ctx context.Context, fixtureID uint) ([]uint, error)
	ListTeamAdminIDs(ctx context.Context, teamID uint) ([]uint, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, notification models.Notification) error
}

type PushClient interface {
	Push(ctx context.Context, notification models.Notification) error
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
