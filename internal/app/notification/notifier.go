package notification

import (
	"context"
	"slices"
	"sort"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

// Notifier resolves recipients and hands notifications to the dispatcher. It never fails the caller: errors are
// logged and dropped.
type Notifier struct {
	rosterRepository RosterRepository
	dispatcher       Dispatcher
	logger           Logger
}

func NewNotifier(rosterRepository RosterRepository, dispatcher Dispatcher, logger Logger) *Notifier {
	return &Notifier{
		rosterRepository: rosterRepository,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

func (n *Notifier) NotifyTeamAdmins(ctx context.Context, teamIDs []uint, notification models.Notification) {
	var userIDs []uint
	for _, teamID := range teamIDs {
		ids, err := n.rosterRepository.ListTeamAdminIDs(ctx, teamID)
		if err != nil {
			n.logger.Error().Err(err).Uint("team_id", teamID).Msg("failed to list team admins for notification")
			continue
		}

		userIDs = append(userIDs, ids...)
	}

	n.dispatch(ctx, userIDs, notification)
}

func (n *Notifier) NotifyAttendees(ctx context.Context, fixtureIDs []uint, notification models.Notification) {
	var userIDs []uint
	for _, fixtureID := range fixtureIDs {
		ids, err := n.rosterRepository.ListAttendingUserIDs(ctx, fixtureID)
		if err != nil {
			n.logger.Error().Err(err).Uint("fixture_id", fixtureID).Msg("failed to list attendees for notification")
			continue
		}

		userIDs = append(userIDs, ids...)
	}

	n.dispatch(ctx, userIDs, notification)
}

func (n *Notifier) dispatch(ctx context.Context, userIDs []uint, notification models.Notification) {
	userIDs = unique(userIDs)
	if len(userIDs) == 0 {
		n.logger.Debug().Str("title", notification.Title).Msg("notification has no recipients")
		return
	}

	notification.UserIDs = userIDs
	if err := n.dispatcher.Dispatch(ctx, notification); err != nil {
		n.logger.Error().Err(err).Str("title", notification.Title).Msg("failed to dispatch notification")
		return
	}

	n.logger.Debug().Str("title", notification.Title).Int("recipients", len(userIDs)).Msg("notification dispatched")
}

func unique(ids []uint) []uint {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return slices.Compact(ids)
}
