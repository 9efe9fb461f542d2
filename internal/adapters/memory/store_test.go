package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/events"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/memory"
	"github.com/huhyoujung/footballlog-sub002/internal/app/authorizer"
	"github.com/huhyoujung/footballlog-sub002/internal/app/challenge"
	"github.com/huhyoujung/footballlog-sub002/internal/app/matchevent"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/notification"
	"github.com/huhyoujung/footballlog-sub002/internal/app/pairing"
	"github.com/huhyoujung/footballlog-sub002/internal/app/referee"
	"github.com/huhyoujung/footballlog-sub002/internal/app/score"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n models.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sent = append(d.sent, n)

	return nil
}

type engine struct {
	store      *memory.Store
	clock      *clockwork.FakeClock
	challenges *challenge.ChallengeService
	events     *matchevent.MatchEventService
	scores     *score.ScoreService
	referees   *referee.RefereeService
	dispatcher *recordingDispatcher
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	clock := clockwork.NewFakeClockAt(testutils.FakeTime())
	logger := loggerinternal.SetupLogger()
	store := memory.NewStore(clock)
	publisher := events.NewLogPublisher(logger)
	dispatcher := &recordingDispatcher{}
	notifier := notification.NewNotifier(store.Roster(), dispatcher, logger)
	resolver := pairing.NewResolver(store.Fixtures(), logger)
	scores := score.NewScoreService(store.Goals(), store.Fixtures())

	return &engine{
		store: store,
		clock: clock,
		challenges: challenge.NewChallengeService(
			config.Challenge{InviteTTL: 72 * time.Hour, ScoringTokenTTL: 24 * time.Hour},
			store,
			store.Fixtures(),
			resolver,
			notifier,
			publisher,
			challenge.NewRandomTokenGenerator(),
			clock,
			logger,
		),
		events: matchevent.NewMatchEventService(
			store,
			authorizer.NewAuthorizerService(store.Fixtures(), store.Roster(), clock),
			store.Fixtures(),
			store.Goals(),
			store.Cards(),
			store.Substitutions(),
			scores,
			publisher,
			clock,
			logger,
		),
		scores:     scores,
		referees:   referee.NewRefereeService(store, store.Fixtures(), store.Referees(), notifier, publisher, clock, logger),
		dispatcher: dispatcher,
	}
}

type teams struct {
	hostAdmin  models.Caller
	guestAdmin models.Caller
	guestUser  models.Caller
}

// confirmedMatch drives a draft fixture through send and accept.
func (e *engine) confirmedMatch(t *testing.T, ctx context.Context) (models.FixturePair, teams) {
	t.Helper()

	hostTeamID, guestTeamID := testutils.FakeID(), testutils.FakeID()+1_000_000
	roster := e.store.Roster()

	tm := teams{
		hostAdmin:  models.Caller{UserID: 1, TeamID: hostTeamID, IsAdmin: true},
		guestAdmin: models.Caller{UserID: 2, TeamID: guestTeamID, IsAdmin: true},
		guestUser:  models.Caller{UserID: 3, TeamID: guestTeamID},
	}
	roster.AddTeamMember(ctx, hostTeamID, tm.hostAdmin.UserID, true)
	roster.AddTeamMember(ctx, guestTeamID, tm.guestAdmin.UserID, true)
	roster.AddTeamMember(ctx, guestTeamID, tm.guestUser.UserID, false)

	draft, err := e.store.Fixtures().Create(ctx, testutils.FakeFixture(func(f *models.Fixture) {
		f.TeamID = hostTeamID
		f.StartsAt = testutils.FakeTime().Add(2 * time.Hour)
	}))
	require.NoError(t, err)

	sent, err := e.challenges.Send(ctx, tm.hostAdmin, models.SendChallengeRequest{FixtureID: draft.ID, OpponentTeamID: guestTeamID})
	require.NoError(t, err)
	require.NotNil(t, sent.Host.ChallengeToken)

	accepted, err := e.challenges.Accept(ctx, tm.guestUser, *sent.Host.ChallengeToken)
	require.NoError(t, err)

	return *accepted, tm
}

func TestStore_WithinTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(clockwork.NewFakeClockAt(testutils.FakeTime()))
	errUnexpected := errors.New("unexpected error")

	kept, err := store.Fixtures().Create(ctx, testutils.FakeFixture())
	require.NoError(t, err)

	var createdID uint
	err = store.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := store.Fixtures().Create(ctx, testutils.FakeFixture())
		if err != nil {
			return err
		}
		createdID = created.ID

		status := models.Cancelled
		if _, err := store.Fixtures().Update(ctx, kept.ID, models.FixtureUpdate{MatchStatus: &status}); err != nil {
			return err
		}

		return errUnexpected
	})
	assert.ErrorIs(t, err, errUnexpected)

	_, err = store.Fixtures().Get(ctx, createdID)
	assert.True(t, errors.As(err, &models.ResourceNotFoundError{}))

	reloaded, err := store.Fixtures().Get(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Draft, reloaded.MatchStatus)
}

func TestStore_AcceptConfirmsBothEnds(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	pair, _ := e.confirmedMatch(t, ctx)

	host, err := e.store.Fixtures().Get(ctx, pair.Host.ID)
	require.NoError(t, err)
	guest, err := e.store.Fixtures().Get(ctx, pair.Guest.ID)
	require.NoError(t, err)

	assert.Equal(t, models.Confirmed, host.MatchStatus)
	assert.Equal(t, models.Confirmed, guest.MatchStatus)
	assert.Nil(t, host.ChallengeToken)
	assert.NotNil(t, host.ScoringToken)
	assert.Equal(t, guest.ID, *host.LinkedFixtureID)
	assert.Equal(t, host.ID, *guest.LinkedFixtureID)
	assert.Equal(t, testutils.FakeTime().Add(26*time.Hour), *host.ScoringTokenExpiresAt)
}

func TestStore_RejectedTokenCannotBeReused(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	hostTeamID, guestTeamID := uint(10), uint(20)
	hostAdmin := models.Caller{UserID: 1, TeamID: hostTeamID, IsAdmin: true}
	guestAdmin := models.Caller{UserID: 2, TeamID: guestTeamID, IsAdmin: true}

	draft, err := e.store.Fixtures().Create(ctx, testutils.FakeFixture(func(f *models.Fixture) { f.TeamID = hostTeamID }))
	require.NoError(t, err)

	sent, err := e.challenges.Send(ctx, hostAdmin, models.SendChallengeRequest{FixtureID: draft.ID, OpponentTeamID: guestTeamID})
	require.NoError(t, err)
	token := *sent.Host.ChallengeToken

	rejected, err := e.challenges.Reject(ctx, guestAdmin, models.RejectChallengeRequest{Token: token})
	require.NoError(t, err)
	assert.Equal(t, models.Cancelled, rejected.MatchStatus)
	assert.Nil(t, rejected.LinkedFixtureID)

	_, err = e.store.Fixtures().Get(ctx, sent.Guest.ID)
	assert.True(t, errors.As(err, &models.ResourceNotFoundError{}))

	_, err = e.challenges.Accept(ctx, guestAdmin, token)
	assert.True(t, errors.As(err, &models.ResourceNotFoundError{}))
}

func TestStore_ExpiredChallengeIsUnwound(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	hostAdmin := models.Caller{UserID: 1, TeamID: 10, IsAdmin: true}
	guestUser := models.Caller{UserID: 2, TeamID: 20}

	draft, err := e.store.Fixtures().Create(ctx, testutils.FakeFixture(func(f *models.Fixture) { f.TeamID = 10 }))
	require.NoError(t, err)

	sent, err := e.challenges.Send(ctx, hostAdmin, models.SendChallengeRequest{FixtureID: draft.ID, OpponentTeamID: 20})
	require.NoError(t, err)

	e.clock.Advance(73 * time.Hour)

	_, err = e.challenges.Accept(ctx, guestUser, *sent.Host.ChallengeToken)
	assert.True(t, errors.As(err, &models.ExpiredError{}))

	host, err := e.store.Fixtures().Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cancelled, host.MatchStatus)
	assert.Nil(t, host.ChallengeToken)
}

func TestStore_ConcurrentGoalsKeepBothEndsInSync(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	pair, tm := e.confirmedMatch(t, ctx)

	_, err := e.challenges.ChangeStatus(ctx, tm.hostAdmin, pair.Host.ID, models.InProgress)
	require.NoError(t, err)

	const perSide = 15
	access := models.MatchAccess{Token: *pair.Host.ScoringToken}

	var wg sync.WaitGroup
	errs := make(chan error, perSide*3)

	record := func(caller models.Caller, side models.TeamSide, ownGoal bool) {
		defer wg.Done()
		_, err := e.events.RecordGoal(ctx, caller, access, models.RecordGoalRequest{
			Quarter:     1,
			ScoringTeam: side,
			IsOwnGoal:   ownGoal,
		})
		errs <- err
	}

	for i := 0; i < perSide; i++ {
		wg.Add(3)
		go record(tm.hostAdmin, models.TeamA, false)
		go record(tm.guestAdmin, models.TeamB, false)
		go record(tm.guestAdmin, models.TeamB, true)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	host, err := e.store.Fixtures().Get(ctx, pair.Host.ID)
	require.NoError(t, err)
	guest, err := e.store.Fixtures().Get(ctx, pair.Guest.ID)
	require.NoError(t, err)

	assert.Equal(t, 2*perSide, host.TeamAScore)
	assert.Equal(t, perSide, host.TeamBScore)
	assert.Equal(t, host.TeamAScore, guest.TeamAScore)
	assert.Equal(t, host.TeamBScore, guest.TeamBScore)

	first, err := e.scores.Recalculate(ctx, pair.Host.ID)
	require.NoError(t, err)
	second, err := e.scores.Recalculate(ctx, pair.Host.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, models.Score{TeamAScore: 2 * perSide, TeamBScore: perSide}, first)
}

func TestStore_AttendanceGrantsScoring(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	pair, tm := e.confirmedMatch(t, ctx)

	_, err := e.challenges.ChangeStatus(ctx, tm.guestAdmin, pair.Guest.ID, models.InProgress)
	require.NoError(t, err)

	request := models.RecordGoalRequest{Quarter: 1, ScoringTeam: models.TeamB}
	access := models.MatchAccess{FixtureID: pair.Guest.ID}

	_, err = e.events.RecordGoal(ctx, tm.guestUser, access, request)
	assert.True(t, errors.As(err, &models.ForbiddenError{}))

	e.store.Roster().AddAttendee(ctx, pair.Guest.ID, tm.guestUser.UserID)

	recorded, err := e.events.RecordGoal(ctx, tm.guestUser, access, request)
	require.NoError(t, err)
	assert.Equal(t, pair.Host.ID, recorded.Goal.FixtureID)
	assert.Equal(t, models.Score{TeamBScore: 1}, recorded.Score)

	score, err := e.events.DeleteGoal(ctx, tm.guestUser, recorded.Goal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Score{}, *score)
}

func TestStore_RefereeApprovalFromBothSides(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		order func(tm teams) []models.Caller
	}{
		{
			name:  "host then guest",
			order: func(tm teams) []models.Caller { return []models.Caller{tm.hostAdmin, tm.guestAdmin} },
		},
		{
			name:  "guest then host",
			order: func(tm teams) []models.Caller { return []models.Caller{tm.guestAdmin, tm.hostAdmin} },
		},
		{
			name:  "duplicate host approval",
			order: func(tm teams) []models.Caller { return []models.Caller{tm.hostAdmin, tm.hostAdmin, tm.guestAdmin} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			pair, tm := e.confirmedMatch(t, ctx)

			assignment, err := e.referees.Assign(ctx, tm.guestAdmin, models.AssignRefereeRequest{
				FixtureID:   pair.Guest.ID,
				RefereeName: "Howard Webb",
			})
			require.NoError(t, err)
			assert.Equal(t, pair.Host.ID, assignment.FixtureID)

			callers := tt.order(tm)
			var approval *models.RefereeApproval
			for i, caller := range callers {
				approval, err = e.referees.Approve(ctx, caller, assignment.ID)
				require.NoError(t, err)

				if i < len(callers)-1 {
					assert.False(t, approval.BothApproved)
					assert.Equal(t, models.PendingApproval, approval.Status)
				}
			}

			assert.True(t, approval.BothApproved)
			assert.Equal(t, models.RefereeConfirmed, approval.Status)
		})
	}
}

func TestStore_GuestWithoutBackLinkIsRepaired(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	pair, tm := e.confirmedMatch(t, ctx)
	guestRole := models.GuestRole

	_, err := e.store.Fixtures().Update(ctx, pair.Guest.ID, models.FixtureUpdate{ClearLink: true})
	require.NoError(t, err)
	legacy, err := e.store.Fixtures().Update(ctx, pair.Guest.ID, models.FixtureUpdate{
		PairRole:       &guestRole,
		OpponentTeamID: &pair.Host.TeamID,
	})
	require.NoError(t, err)
	require.Nil(t, legacy.LinkedFixtureID)

	changed, err := e.challenges.ChangeStatus(ctx, tm.guestAdmin, pair.Guest.ID, models.InProgress)
	require.NoError(t, err)
	assert.Equal(t, pair.Host.ID, changed.Host.ID)
	require.NotNil(t, changed.Guest)
	assert.Equal(t, pair.Guest.ID, changed.Guest.ID)

	_, err = e.events.RecordGoal(ctx, tm.hostAdmin, models.MatchAccess{Token: *pair.Host.ScoringToken}, models.RecordGoalRequest{
		Quarter:     1,
		ScoringTeam: models.TeamA,
	})
	require.NoError(t, err)

	recorded, err := e.events.RecordGoal(ctx, tm.guestAdmin, models.MatchAccess{FixtureID: pair.Guest.ID}, models.RecordGoalRequest{
		Quarter:     1,
		ScoringTeam: models.TeamB,
	})
	require.NoError(t, err)
	assert.Equal(t, pair.Host.ID, recorded.Goal.FixtureID)

	host, err := e.store.Fixtures().Get(ctx, pair.Host.ID)
	require.NoError(t, err)
	guest, err := e.store.Fixtures().Get(ctx, pair.Guest.ID)
	require.NoError(t, err)

	assert.Equal(t, models.HostRole, host.PairRole)
	assert.Equal(t, guest.ID, *host.LinkedFixtureID)
	assert.Equal(t, models.GuestRole, guest.PairRole)
	require.NotNil(t, guest.LinkedFixtureID)
	assert.Equal(t, host.ID, *guest.LinkedFixtureID)
	assert.Equal(t, host.TeamID, *guest.OpponentTeamID)

	for _, fixture := range []*models.Fixture{host, guest} {
		assert.Equal(t, models.InProgress, fixture.MatchStatus)
		assert.Equal(t, 1, fixture.TeamAScore)
		assert.Equal(t, 1, fixture.TeamBScore)
	}

	events, err := e.events.ListEvents(ctx, guest.ID)
	require.NoError(t, err)
	assert.Len(t, events.Goals, 2)

	hostGoals, err := e.store.Goals().ListByFixture(ctx, host.ID)
	require.NoError(t, err)
	assert.Len(t, hostGoals, 2)
}

type failingFixtureRepository struct {
	*memory.FixtureRepository
	failID uint
	err    error
}

func (r *failingFixtureRepository) Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error) {
	if id == r.failID {
		return nil, r.err
	}

	return r.FixtureRepository.Update(ctx, id, update)
}

func TestStore_AcceptLeavesBothEndsUntouchedWhenGuestUpdateFails(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)
	errUnexpected := errors.New("unexpected error")

	hostAdmin := models.Caller{UserID: 1, TeamID: 10, IsAdmin: true}
	guestUser := models.Caller{UserID: 2, TeamID: 20}

	draft, err := e.store.Fixtures().Create(ctx, testutils.FakeFixture(func(f *models.Fixture) {
		f.TeamID = hostAdmin.TeamID
		f.StartsAt = testutils.FakeTime().Add(2 * time.Hour)
	}))
	require.NoError(t, err)

	sent, err := e.challenges.Send(ctx, hostAdmin, models.SendChallengeRequest{FixtureID: draft.ID, OpponentTeamID: guestUser.TeamID})
	require.NoError(t, err)
	require.NotNil(t, sent.Guest)
	token := *sent.Host.ChallengeToken

	logger := loggerinternal.SetupLogger()
	challenges := challenge.NewChallengeService(
		config.Challenge{InviteTTL: 72 * time.Hour, ScoringTokenTTL: 24 * time.Hour},
		e.store,
		&failingFixtureRepository{FixtureRepository: e.store.Fixtures(), failID: sent.Guest.ID, err: errUnexpected},
		pairing.NewResolver(e.store.Fixtures(), logger),
		notification.NewNotifier(e.store.Roster(), e.dispatcher, logger),
		events.NewLogPublisher(logger),
		challenge.NewRandomTokenGenerator(),
		e.clock,
		logger,
	)

	_, err = challenges.Accept(ctx, guestUser, token)
	assert.ErrorIs(t, err, errUnexpected)

	host, err := e.store.Fixtures().Get(ctx, sent.Host.ID)
	require.NoError(t, err)
	guest, err := e.store.Fixtures().Get(ctx, sent.Guest.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ChallengeSent, host.MatchStatus)
	require.NotNil(t, host.ChallengeToken)
	assert.Equal(t, token, *host.ChallengeToken)
	assert.Nil(t, host.ScoringToken)
	assert.Equal(t, sent.Guest.MatchStatus, guest.MatchStatus)
	assert.Equal(t, *sent.Guest, *guest)

	accepted, err := e.challenges.Accept(ctx, guestUser, token)
	require.NoError(t, err)
	assert.Equal(t, models.Confirmed, accepted.Host.MatchStatus)
}

func TestStore_DeleteMissingFixture(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(clockwork.NewFakeClockAt(testutils.FakeTime()))

	err := store.Fixtures().Delete(ctx, testutils.FakeID())
	assert.True(t, errors.As(err, &models.ResourceNotFoundError{}))
}

func TestStore_RosterMembership(t *testing.T) {
	ctx := context.Background()
	roster := memory.NewStore(clockwork.NewFakeClockAt(testutils.FakeTime())).Roster()

	roster.AddTeamMember(ctx, 10, 1, true)
	roster.AddTeamMember(ctx, 10, 2, false)

	for userID, expected := range map[uint]bool{1: true, 2: true, 3: false} {
		isMember, err := roster.IsTeamMember(ctx, userID, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, isMember)
	}

	isAdmin, err := roster.IsTeamAdmin(ctx, 2, 10)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
