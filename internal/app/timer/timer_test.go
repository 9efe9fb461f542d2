package timer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer/mocks"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var presets = map[string]models.MatchFormat{
	"futsal": {QuarterCount: 2, QuarterMinutes: 20, BreakMinutes: 0, HalftimeMinutes: 10},
}

type dependencies struct {
	txManager         func(t *testing.T) *mocks.TxManager
	fixtureRepository func(t *testing.T) *mocks.FixtureRepository
	pairResolver      func(t *testing.T) *mocks.PairResolver
	publisher         func(t *testing.T) *mocks.EventPublisher
}

func newService(t *testing.T, deps dependencies, now time.Time) *timer.TimerService {
	t.Helper()

	var txManager *mocks.TxManager
	if deps.txManager != nil {
		txManager = deps.txManager(t)
	}

	var fixtureRepository *mocks.FixtureRepository
	if deps.fixtureRepository != nil {
		fixtureRepository = deps.fixtureRepository(t)
	}

	var pairResolver *mocks.PairResolver
	if deps.pairResolver != nil {
		pairResolver = deps.pairResolver(t)
	}

	var publisher *mocks.EventPublisher
	if deps.publisher != nil {
		publisher = deps.publisher(t)
	}

	return timer.NewTimerService(
		txManager,
		fixtureRepository,
		pairResolver,
		publisher,
		presets,
		clockwork.NewFakeClockAt(now),
		loggerinternal.SetupLogger(),
	)
}

func inTransaction(ctx context.Context) func(t *testing.T) *mocks.TxManager {
	return func(t *testing.T) *mocks.TxManager {
		t.Helper()
		m := mocks.NewTxManager(t)
		m.On("WithinTransaction", ctx, mock.Anything).Return(testutils.RunInTransaction).Once()
		return m
	}
}

func locks(ctx context.Context, fixtureID uint, host models.Fixture, guest *models.Fixture, err error) func(t *testing.T) *mocks.PairResolver {
	return func(t *testing.T) *mocks.PairResolver {
		t.Helper()
		m := mocks.NewPairResolver(t)
		if err != nil {
			m.On("LockPair", ctx, fixtureID).Return(nil, err).Once()
			return m
		}
		m.On("LockPair", ctx, fixtureID).Return(&models.FixturePair{Host: host, Guest: guest}, nil).Once()
		return m
	}
}

func mirrors(ctx context.Context, expected models.MatchTimer, ids ...uint) func(t *testing.T) *mocks.FixtureRepository {
	return func(t *testing.T) *mocks.FixtureRepository {
		t.Helper()
		m := mocks.NewFixtureRepository(t)
		for _, id := range ids {
			m.On("Update", ctx, id, models.FixtureUpdate{Timer: &expected}).Return(&models.Fixture{ID: id}, nil).Once()
		}
		return m
	}
}

func publishesTimerChange(t *testing.T) *mocks.EventPublisher {
	t.Helper()
	m := mocks.NewEventPublisher(t)
	m.On("Publish", mock.Anything, mock.MatchedBy(func(e models.DomainEvent) bool {
		return e.Type == models.EventTimerChanged
	})).Return().Once()
	return m
}

func TestTimerService_Start(t *testing.T) {
	ctx := context.Background()
	now := testutils.FakeTime()
	errUnexpected := errors.New("unexpected error")

	host, guest := testutils.FakePair(models.InProgress)
	admin := models.Caller{UserID: testutils.FakeID(), TeamID: guest.TeamID, IsAdmin: true}

	startedAt := now.Add(-5 * time.Minute)
	running := host
	running.Timer.CurrentPhase = 2
	running.Timer.ElapsedSeconds = 30
	running.Timer.TimerStartedAt = &startedAt

	finished := host
	finished.Timer.CurrentPhase = host.Timer.QuarterCount*2 + 1

	firstQuarter := host.Timer
	firstQuarter.CurrentPhase = 1
	firstQuarter.TimerStartedAt = &now

	confirmed := host
	confirmed.MatchStatus = models.Confirmed

	tests := []struct {
		name   string
		caller models.Caller
		deps   dependencies
		check  func(t *testing.T, clock *timer.MatchClock)
		err    error
	}{
		{
			name:   "it returns an error when caller is not authenticated",
			caller: models.Caller{},
			err:    models.NewUnauthenticatedError(errors.New("caller is not authenticated")),
		},
		{
			name:   "it returns an error when locking fails",
			caller: admin,
			deps: dependencies{
				txManager:    inTransaction(ctx),
				pairResolver: locks(ctx, guest.ID, models.Fixture{}, nil, errUnexpected),
			},
			err: errUnexpected,
		},
		{
			name:   "it returns an error when caller is not an administrator",
			caller: models.Caller{UserID: admin.UserID, TeamID: guest.TeamID},
			deps: dependencies{
				txManager:    inTransaction(ctx),
				pairResolver: locks(ctx, guest.ID, host, &guest, nil),
			},
			err: models.NewForbiddenError(errors.New("only an administrator of either team can control the timer")),
		},
		{
			name:   "it returns an error when match is not in progress",
			caller: admin,
			deps: dependencies{
				txManager:    inTransaction(ctx),
				pairResolver: locks(ctx, guest.ID, confirmed, &guest, nil),
			},
			err: models.NewConflictError(errors.New("match is not in progress, status is CONFIRMED")),
		},
		{
			name:   "it returns an error when all phases are finished",
			caller: admin,
			deps: dependencies{
				txManager:    inTransaction(ctx),
				pairResolver: locks(ctx, guest.ID, finished, &guest, nil),
			},
			err: models.NewConflictError(errors.New("all phases are finished")),
		},
		{
			name:   "it moves a fresh timer into the first quarter and mirrors it to both ends",
			caller: admin,
			deps: dependencies{
				txManager:         inTransaction(ctx),
				pairResolver:      locks(ctx, guest.ID, host, &guest, nil),
				fixtureRepository: mirrors(ctx, firstQuarter, host.ID, guest.ID),
				publisher:         publishesTimerChange,
			},
			check: func(t *testing.T, clock *timer.MatchClock) {
				assert.Equal(t, host.ID, clock.FixtureID)
				assert.Equal(t, 1, clock.CurrentPhase)
				assert.True(t, clock.Running)
				assert.Equal(t, 0, clock.ElapsedSeconds)
				if assert.NotNil(t, clock.RemainingSeconds) {
					assert.Equal(t, host.Timer.QuarterMinutes*60, *clock.RemainingSeconds)
				}
			},
		},
		{
			name:   "it leaves a running timer untouched",
			caller: admin,
			deps: dependencies{
				txManager:         inTransaction(ctx),
				pairResolver:      locks(ctx, guest.ID, running, &guest, nil),
				fixtureRepository: mirrors(ctx, running.Timer, host.ID, guest.ID),
				publisher:         publishesTimerChange,
			},
			check: func(t *testing.T, clock *timer.MatchClock) {
				assert.Equal(t, 2, clock.CurrentPhase)
				assert.Equal(t, 330, clock.ElapsedSeconds)
				assert.True(t, clock.Running)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t, tt.deps, now)

			result, err := s.Start(ctx, tt.caller, guest.ID)
			if tt.err != nil {
				assert.ErrorContains(t, err, tt.err.Error())
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestTimerService_Pause(t *testing.T) {
	ctx := context.Background()
	now := testutils.FakeTime()

	host, guest := testutils.FakePair(models.InProgress)
	admin := models.Caller{UserID: testutils.FakeID(), TeamID: host.TeamID, IsAdmin: true}

	startedAt := now.Add(-90 * time.Second)
	running := host
	running.Timer.CurrentPhase = 1
	running.Timer.ElapsedSeconds = 60
	running.Timer.TimerStartedAt = &startedAt

	paused := running.Timer
	paused.ElapsedSeconds = 150
	paused.TimerStartedAt = nil

	s := newService(t, dependencies{
		txManager:         inTransaction(ctx),
		pairResolver:      locks(ctx, host.ID, running, &guest, nil),
		fixtureRepository: mirrors(ctx, paused, host.ID, guest.ID),
		publisher:         publishesTimerChange,
	}, now)

	result, err := s.Pause(ctx, admin, host.ID)

	assert.NoError(t, err)
	assert.False(t, result.Running)
	assert.Equal(t, 150, result.ElapsedSeconds)
}

func TestTimerService_NextPhase(t *testing.T) {
	ctx := context.Background()
	now := testutils.FakeTime()

	host, guest := testutils.FakePair(models.InProgress)
	admin := models.Caller{UserID: testutils.FakeID(), TeamID: host.TeamID, IsAdmin: true}
	phaseCount := host.Timer.QuarterCount*2 - 1

	startedAt := now.Add(-time.Minute)

	runningQuarter := host
	runningQuarter.Timer.CurrentPhase = 1
	runningQuarter.Timer.ElapsedSeconds = 100
	runningQuarter.Timer.TimerStartedAt = &startedAt

	runningBreak := runningQuarter.Timer
	runningBreak.CurrentPhase = 2
	runningBreak.ElapsedSeconds = 0
	runningBreak.TimerStartedAt = &now

	pausedQuarter := host
	pausedQuarter.Timer.CurrentPhase = 3
	pausedQuarter.Timer.ElapsedSeconds = 100

	pausedBreak := pausedQuarter.Timer
	pausedBreak.CurrentPhase = 4
	pausedBreak.ElapsedSeconds = 0

	lastPhase := host
	lastPhase.Timer.CurrentPhase = phaseCount
	lastPhase.Timer.TimerStartedAt = &startedAt

	pastLast := lastPhase.Timer
	pastLast.CurrentPhase = phaseCount + 1
	pastLast.TimerStartedAt = nil

	tests := []struct {
		name     string
		fixture  models.Fixture
		expected models.MatchTimer
		check    func(t *testing.T, clock *timer.MatchClock)
	}{
		{
			name:     "it keeps a running clock running in the next phase",
			fixture:  runningQuarter,
			expected: runningBreak,
			check: func(t *testing.T, clock *timer.MatchClock) {
				assert.True(t, clock.Running)
				assert.Equal(t, 2, clock.CurrentPhase)
				assert.Equal(t, 0, clock.ElapsedSeconds)
			},
		},
		{
			name:     "it keeps a paused clock paused in the next phase",
			fixture:  pausedQuarter,
			expected: pausedBreak,
			check: func(t *testing.T, clock *timer.MatchClock) {
				assert.False(t, clock.Running)
				assert.Equal(t, 4, clock.CurrentPhase)
			},
		},
		{
			name:     "it stops the clock after the last phase",
			fixture:  lastPhase,
			expected: pastLast,
			check: func(t *testing.T, clock *timer.MatchClock) {
				assert.False(t, clock.Running)
				assert.True(t, clock.Finished)
				assert.Nil(t, clock.Phase)
				assert.Nil(t, clock.RemainingSeconds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t, dependencies{
				txManager:         inTransaction(ctx),
				pairResolver:      locks(ctx, host.ID, tt.fixture, &guest, nil),
				fixtureRepository: mirrors(ctx, tt.expected, host.ID, guest.ID),
				publisher:         publishesTimerChange,
			}, now)

			result, err := s.NextPhase(ctx, admin, host.ID)

			assert.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestTimerService_Configure(t *testing.T) {
	ctx := context.Background()
	now := testutils.FakeTime()

	host, guest := testutils.FakePair(models.Confirmed)
	admin := models.Caller{UserID: testutils.FakeID(), TeamID: host.TeamID, IsAdmin: true}

	inProgress := host
	inProgress.MatchStatus = models.InProgress

	custom := testutils.FakeMatchFormat(func(f *models.MatchFormat) {
		f.QuarterCount = 3
		f.QuarterMinutes = 15
		f.HalftimeMinutes = 0
	})

	tests := []struct {
		name    string
		request models.ConfigureTimerRequest
		deps    dependencies
		format  models.MatchFormat
		err     error
	}{
		{
			name:    "it returns an error when preset is unknown",
			request: models.ConfigureTimerRequest{FixtureID: host.ID, FormatName: "rugby"},
			err:     models.NewInvalidInputError(errors.New(`match format "rugby" is unknown`)),
		},
		{
			name:    "it returns an error when explicit format has no quarters",
			request: models.ConfigureTimerRequest{FixtureID: host.ID, Format: &models.MatchFormat{QuarterMinutes: 10}},
			err:     models.NewInvalidInputError(errors.New("match format needs at least one quarter of at least one minute")),
		},
		{
			name:    "it returns an error when match already kicked off",
			request: models.ConfigureTimerRequest{FixtureID: host.ID, FormatName: "futsal"},
			deps: dependencies{
				txManager:    inTransaction(ctx),
				pairResolver: locks(ctx, host.ID, inProgress, &guest, nil),
			},
			err: models.NewConflictError(errors.New("timer cannot be configured, status is IN_PROGRESS")),
		},
		{
			name:    "it applies a named preset to both ends",
			request: models.ConfigureTimerRequest{FixtureID: host.ID, FormatName: "futsal"},
			deps: dependencies{
				txManager:         inTransaction(ctx),
				pairResolver:      locks(ctx, host.ID, host, &guest, nil),
				fixtureRepository: mirrors(ctx, models.MatchTimer{MatchFormat: presets["futsal"]}, host.ID, guest.ID),
				publisher:         publishesTimerChange,
			},
			format: presets["futsal"],
		},
		{
			name:    "it applies an explicit format",
			request: models.ConfigureTimerRequest{FixtureID: host.ID, FormatName: "futsal", Format: &custom},
			deps: dependencies{
				txManager:         inTransaction(ctx),
				pairResolver:      locks(ctx, host.ID, host, &guest, nil),
				fixtureRepository: mirrors(ctx, models.MatchTimer{MatchFormat: custom}, host.ID, guest.ID),
				publisher:         publishesTimerChange,
			},
			format: custom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t, tt.deps, now)

			result, err := s.Configure(ctx, admin, tt.request)
			if tt.err != nil {
				assert.ErrorContains(t, err, tt.err.Error())
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.format, result.Format)
			assert.Equal(t, 0, result.CurrentPhase)
			assert.Len(t, result.Phases, tt.format.QuarterCount*2-1)
		})
	}
}

func TestTimerService_Clock(t *testing.T) {
	ctx := context.Background()
	now := testutils.FakeTime()

	startedAt := now.Add(-2 * time.Minute)
	fixture := testutils.FakeFixture(func(f *models.Fixture) {
		f.MatchStatus = models.InProgress
		f.Timer = models.MatchTimer{
			MatchFormat:    models.MatchFormat{QuarterCount: 4, QuarterMinutes: 10, BreakMinutes: 2, HalftimeMinutes: 5},
			CurrentPhase:   3,
			ElapsedSeconds: 60,
			TimerStartedAt: &startedAt,
		}
	})

	s := newService(t, dependencies{
		fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
			t.Helper()
			m := mocks.NewFixtureRepository(t)
			m.On("Get", ctx, fixture.ID).Return(&fixture, nil).Once()
			return m
		},
	}, now)

	result, err := s.Clock(ctx, fixture.ID)

	assert.NoError(t, err)
	assert.Equal(t, 180, result.ElapsedSeconds)
	assert.True(t, result.Running)
	assert.False(t, result.Finished)
	if assert.NotNil(t, result.Phase) && assert.NotNil(t, result.RemainingSeconds) {
		assert.Equal(t, 420, *result.RemainingSeconds)
	}
}
