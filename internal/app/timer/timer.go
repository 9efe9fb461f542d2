package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/phaseclock"
)

type TimerService struct {
	txManager         TxManager
	fixtureRepository FixtureRepository
	pairResolver      PairResolver
	publisher         EventPublisher
	formats           map[string]models.MatchFormat
	clock             Clock
	logger            Logger
}

func NewTimerService(
	txManager TxManager,
	fixtureRepository FixtureRepository,
	pairResolver PairResolver,
	publisher EventPublisher,
	formats map[string]models.MatchFormat,
	clock Clock,
	logger Logger,
) *TimerService {
	return &TimerService{
		txManager:         txManager,
		fixtureRepository: fixtureRepository,
		pairResolver:      pairResolver,
		publisher:         publisher,
		formats:           formats,
		clock:             clock,
		logger:            logger,
	}
}

// Clock reads the timer of a fixture. Both ends of a pair carry the same timer.
func (s *TimerService) Clock(ctx context.Context, fixtureID uint) (*MatchClock, error) {
	fixture, err := s.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	clock := newMatchClock(fixture.ID, fixture.Timer, s.clock.Now())

	return &clock, nil
}

// Configure sets the match format and resets the timer. It is allowed only before kickoff.
func (s *TimerService) Configure(ctx context.Context, caller models.Caller, request models.ConfigureTimerRequest) (*MatchClock, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	format, err := s.resolveFormat(request)
	if err != nil {
		return nil, err
	}

	var timer models.MatchTimer
	var pair *models.FixturePair

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		pair, err = s.pairResolver.LockPair(ctx, request.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixture pair: %w", err)
		}

		if !isPairAdmin(caller, *pair) {
			return models.NewForbiddenError(errors.New("only an administrator of either team can configure the timer"))
		}

		status := pair.Host.MatchStatus
		if status == models.InProgress || pair.Host.IsTerminal() {
			return models.NewConflictError(fmt.Errorf("timer cannot be configured, status is %s", status))
		}

		timer = models.MatchTimer{MatchFormat: format}

		return s.mirror(ctx, *pair, timer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure timer: %w", err)
	}

	return s.changed(ctx, *pair, timer), nil
}

// Start runs the clock of the current phase. A timer that has not left phase zero moves to the first quarter.
func (s *TimerService) Start(ctx context.Context, caller models.Caller, fixtureID uint) (*MatchClock, error) {
	return s.control(ctx, caller, fixtureID, "start", func(timer models.MatchTimer, now time.Time) (models.MatchTimer, error) {
		phases := buildPhases(timer.MatchFormat)
		if len(phases) == 0 {
			return timer, models.NewConflictError(errors.New("match format is not configured"))
		}

		if timer.CurrentPhase > len(phases) {
			return timer, models.NewConflictError(errors.New("all phases are finished"))
		}

		if timer.CurrentPhase == 0 {
			timer.CurrentPhase = 1
		}

		if !timer.Running() {
			timer.TimerStartedAt = &now
		}

		return timer, nil
	})
}

// Pause folds the running segment into the accumulated seconds.
func (s *TimerService) Pause(ctx context.Context, caller models.Caller, fixtureID uint) (*MatchClock, error) {
	return s.control(ctx, caller, fixtureID, "pause", func(timer models.MatchTimer, now time.Time) (models.MatchTimer, error) {
		if !timer.Running() {
			return timer, nil
		}

		timer.ElapsedSeconds = elapsed(timer, now)
		timer.TimerStartedAt = nil

		return timer, nil
	})
}

// NextPhase moves to the following phase with a fresh clock. A running clock keeps running; stepping past the last
// phase stops it.
func (s *TimerService) NextPhase(ctx context.Context, caller models.Caller, fixtureID uint) (*MatchClock, error) {
	return s.control(ctx, caller, fixtureID, "advance", func(timer models.MatchTimer, now time.Time) (models.MatchTimer, error) {
		phases := buildPhases(timer.MatchFormat)
		if len(phases) == 0 {
			return timer, models.NewConflictError(errors.New("match format is not configured"))
		}

		if timer.CurrentPhase > len(phases) {
			return timer, models.NewConflictError(errors.New("all phases are finished"))
		}

		running := timer.Running()

		timer.CurrentPhase++
		timer.ElapsedSeconds = 0
		timer.TimerStartedAt = nil

		if running && timer.CurrentPhase <= len(phases) {
			timer.TimerStartedAt = &now
		}

		return timer, nil
	})
}

func (s *TimerService) control(
	ctx context.Context,
	caller models.Caller,
	fixtureID uint,
	action string,
	mutate func(timer models.MatchTimer, now time.Time) (models.MatchTimer, error),
) (*MatchClock, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	var timer models.MatchTimer
	var pair *models.FixturePair

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		pair, err = s.pairResolver.LockPair(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixture pair: %w", err)
		}

		if !isPairAdmin(caller, *pair) {
			return models.NewForbiddenError(errors.New("only an administrator of either team can control the timer"))
		}

		if pair.Host.MatchStatus != models.InProgress {
			return models.NewConflictError(fmt.Errorf("match is not in progress, status is %s", pair.Host.MatchStatus))
		}

		timer, err = mutate(pair.Host.Timer, s.clock.Now())
		if err != nil {
			return err
		}

		return s.mirror(ctx, *pair, timer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to %s timer: %w", action, err)
	}

	return s.changed(ctx, *pair, timer), nil
}

func (s *TimerService) mirror(ctx context.Context, pair models.FixturePair, timer models.MatchTimer) error {
	update := models.FixtureUpdate{Timer: &timer}

	if _, err := s.fixtureRepository.Update(ctx, pair.Host.ID, update); err != nil {
		return fmt.Errorf("failed to update fixture %d: %w", pair.Host.ID, err)
	}

	if pair.Guest == nil {
		return nil
	}

	if _, err := s.fixtureRepository.Update(ctx, pair.Guest.ID, update); err != nil {
		return fmt.Errorf("failed to update linked fixture %d: %w", pair.Guest.ID, err)
	}

	return nil
}

func (s *TimerService) changed(ctx context.Context, pair models.FixturePair, timer models.MatchTimer) *MatchClock {
	now := s.clock.Now()

	s.logger.Debug().
		Uint("fixture_id", pair.Host.ID).
		Int("phase", timer.CurrentPhase).
		Bool("running", timer.Running()).
		Msg("match timer changed")

	s.publisher.Publish(ctx, models.DomainEvent{
		Type:      models.EventTimerChanged,
		FixtureID: pair.Host.ID,
		Payload: models.TimerChangedPayload{
			FixtureIDs:     pair.IDs(),
			CurrentPhase:   timer.CurrentPhase,
			ElapsedSeconds: elapsed(timer, now),
			TimerStartedAt: timer.TimerStartedAt,
		},
		CreatedAt: now,
	})

	clock := newMatchClock(pair.Host.ID, timer, now)

	return &clock
}

func (s *TimerService) resolveFormat(request models.ConfigureTimerRequest) (models.MatchFormat, error) {
	format := request.Format
	if format == nil {
		preset, ok := s.formats[request.FormatName]
		if !ok {
			return models.MatchFormat{}, models.NewInvalidInputError(fmt.Errorf("match format %q is unknown", request.FormatName))
		}

		format = &preset
	}

	if format.QuarterCount < 1 || format.QuarterMinutes < 1 {
		return models.MatchFormat{}, models.NewInvalidInputError(errors.New("match format needs at least one quarter of at least one minute"))
	}

	if format.BreakMinutes < 0 || format.HalftimeMinutes < 0 {
		return models.MatchFormat{}, models.NewInvalidInputError(errors.New("break and halftime cannot be negative"))
	}

	return *format, nil
}

func elapsed(timer models.MatchTimer, now time.Time) int {
	return phaseclock.ComputeElapsed(timer.ElapsedSeconds, timer.TimerStartedAt, now)
}

func isPairAdmin(caller models.Caller, pair models.FixturePair) bool {
	for _, teamID := range pair.TeamIDs() {
		if caller.IsAdminOf(teamID) {
			return true
		}
	}

	return false
}
