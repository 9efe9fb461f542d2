package testutils

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type Option[T any] func(*T)

func applyOptions[T any](item *T, updates ...Option[T]) {
	for _, update := range updates {
		update(item)
	}
}

// FakeID never returns zero, which the services treat as "missing".
func FakeID() uint {
	return uint(gofakeit.IntRange(1, 1_000_000))
}

func Ptr[T any](v T) *T {
	return &v
}

// RunInTransaction is a TxManager.WithinTransaction stand-in for mocks: it calls fn with the given context.
func RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func FakeCaller(options ...Option[models.Caller]) models.Caller {
	caller := models.Caller{
		UserID: FakeID(),
		TeamID: FakeID(),
	}

	applyOptions(&caller, options...)

	return caller
}

func FakeMatchFormat(options ...Option[models.MatchFormat]) models.MatchFormat {
	format := models.MatchFormat{
		QuarterCount:    4,
		QuarterMinutes:  gofakeit.Number(10, 20),
		BreakMinutes:    2,
		HalftimeMinutes: 5,
	}

	applyOptions(&format, options...)

	return format
}

func FakeFixture(options ...Option[models.Fixture]) models.Fixture {
	createdAt := gofakeit.Date().UTC()

	fixture := models.Fixture{
		ID:          FakeID(),
		TeamID:      FakeID(),
		Title:       gofakeit.Sentence(3),
		StartsAt:    gofakeit.FutureDate().UTC(),
		MatchStatus: models.Draft,
		PairRole:    models.Unpaired,
		Timer:       models.MatchTimer{MatchFormat: FakeMatchFormat()},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	applyOptions(&fixture, options...)

	return fixture
}

// FakePair returns a linked host and guest fixture in the given status.
func FakePair(status models.MatchStatus) (models.Fixture, models.Fixture) {
	hostID, guestID := FakeID(), FakeID()
	hostTeamID, guestTeamID := FakeID(), FakeID()
	format := FakeMatchFormat()

	host := FakeFixture(func(f *models.Fixture) {
		f.ID = hostID
		f.TeamID = hostTeamID
		f.OpponentTeamID = &guestTeamID
		f.MatchStatus = status
		f.PairRole = models.HostRole
		f.LinkedFixtureID = &guestID
		f.Timer = models.MatchTimer{MatchFormat: format}
	})

	guest := FakeFixture(func(f *models.Fixture) {
		f.ID = guestID
		f.TeamID = guestTeamID
		f.OpponentTeamID = &hostTeamID
		f.Title = host.Title
		f.StartsAt = host.StartsAt
		f.MatchStatus = status
		f.PairRole = models.GuestRole
		f.LinkedFixtureID = &hostID
		f.Timer = models.MatchTimer{MatchFormat: format}
	})

	return host, guest
}

func FakeGoalEvent(options ...Option[models.GoalEvent]) models.GoalEvent {
	sides := []models.TeamSide{models.TeamA, models.TeamB}

	goal := models.GoalEvent{
		ID:          FakeID(),
		FixtureID:   FakeID(),
		Quarter:     gofakeit.IntRange(1, 4),
		Minute:      Ptr(gofakeit.IntRange(0, 15)),
		ScoringTeam: sides[gofakeit.IntRange(0, len(sides)-1)],
		ScorerID:    Ptr(FakeID()),
		RecordedBy:  FakeID(),
		CreatedAt:   gofakeit.Date().UTC(),
	}

	applyOptions(&goal, options...)

	return goal
}

func FakeCardEvent(options ...Option[models.CardEvent]) models.CardEvent {
	card := models.CardEvent{
		ID:         FakeID(),
		FixtureID:  FakeID(),
		Quarter:    gofakeit.IntRange(1, 4),
		Minute:     Ptr(gofakeit.IntRange(0, 15)),
		TeamSide:   models.TeamA,
		PlayerID:   Ptr(FakeID()),
		CardType:   models.YellowCard,
		RecordedBy: FakeID(),
		CreatedAt:  gofakeit.Date().UTC(),
	}

	applyOptions(&card, options...)

	return card
}

func FakeRefereeAssignment(options ...Option[models.RefereeAssignment]) models.RefereeAssignment {
	assignment := models.RefereeAssignment{
		ID:            FakeID(),
		FixtureID:     FakeID(),
		RefereeUserID: Ptr(FakeID()),
		RefereeName:   gofakeit.Name(),
		Status:        models.PendingApproval,
		CreatedAt:     gofakeit.Date().UTC(),
	}

	applyOptions(&assignment, options...)

	return assignment
}

func FakeNotification(options ...Option[models.Notification]) models.Notification {
	notification := models.Notification{
		UserIDs: []uint{FakeID(), FakeID()},
		Title:   gofakeit.Sentence(3),
		Body:    gofakeit.Sentence(8),
		URL:     gofakeit.URL(),
	}

	applyOptions(&notification, options...)

	return notification
}

func FakeTime() time.Time {
	return time.Date(2026, time.May, 17, 10, 0, 0, 0, time.UTC)
}
