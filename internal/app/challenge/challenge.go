package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/phaseclock"
)

type ChallengeService struct {
	config            config.Challenge
	txManager         TxManager
	fixtureRepository FixtureRepository
	pairResolver      PairResolver
	notifier          Notifier
	publisher         EventPublisher
	tokenGenerator    TokenGenerator
	clock             Clock
	logger            Logger
}

func NewChallengeService(
	config config.Challenge,
	txManager TxManager,
	fixtureRepository FixtureRepository,
	pairResolver PairResolver,
	notifier Notifier,
	publisher EventPublisher,
	tokenGenerator TokenGenerator,
	clock Clock,
	logger Logger,
) *ChallengeService {
	return &ChallengeService{
		config:            config,
		txManager:         txManager,
		fixtureRepository: fixtureRepository,
		pairResolver:      pairResolver,
		notifier:          notifier,
		publisher:         publisher,
		tokenGenerator:    tokenGenerator,
		clock:             clock,
		logger:            logger,
	}
}

func (s *ChallengeService) Get(ctx context.Context, fixtureID uint) (*models.Fixture, error) {
	fixture, err := s.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	return fixture, nil
}

// Send creates the opponent's fixture and links both ends in one transaction. The host keeps the invite token.
func (s *ChallengeService) Send(ctx context.Context, caller models.Caller, request models.SendChallengeRequest) (*models.FixturePair, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if request.OpponentTeamID == 0 {
		return nil, models.NewInvalidInputError(errors.New("opponent team is required"))
	}

	var pair models.FixturePair
	var token string

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		fixture, err := s.fixtureRepository.GetForUpdate(ctx, request.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to get fixture: %w", err)
		}

		if !caller.IsAdminOf(fixture.TeamID) {
			return models.NewForbiddenError(errors.New("only an administrator of the host team can send a challenge"))
		}

		if fixture.MatchStatus != models.Draft {
			return models.NewConflictError(fmt.Errorf("challenge can only be sent for a draft fixture, status is %s", fixture.MatchStatus))
		}

		if fixture.LinkedFixtureID != nil {
			return models.NewConflictError(errors.New("fixture is already linked to another fixture"))
		}

		if request.OpponentTeamID == fixture.TeamID {
			return models.NewInvalidInputError(errors.New("team cannot challenge itself"))
		}

		token, err = s.tokenGenerator.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate challenge token: %w", err)
		}

		guest, err := s.fixtureRepository.Create(ctx, models.Fixture{
			TeamID:          request.OpponentTeamID,
			OpponentTeamID:  &fixture.TeamID,
			Title:           fixture.Title,
			StartsAt:        fixture.StartsAt,
			MatchStatus:     models.ChallengeSent,
			PairRole:        models.GuestRole,
			LinkedFixtureID: &fixture.ID,
			Timer:           models.MatchTimer{MatchFormat: fixture.Timer.MatchFormat},
		})
		if err != nil {
			return fmt.Errorf("failed to create opponent fixture: %w", err)
		}

		status := models.ChallengeSent
		role := models.HostRole
		expiresAt := s.clock.Now().Add(s.config.InviteTTL)
		host, err := s.fixtureRepository.Update(ctx, fixture.ID, models.FixtureUpdate{
			MatchStatus:             &status,
			PairRole:                &role,
			OpponentTeamID:          &request.OpponentTeamID,
			LinkedFixtureID:         &guest.ID,
			ChallengeToken:          &token,
			ChallengeTokenExpiresAt: &expiresAt,
		})
		if err != nil {
			return fmt.Errorf("failed to update fixture %d: %w", fixture.ID, err)
		}

		pair = models.FixturePair{Host: *host, Guest: guest}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send challenge: %w", err)
	}

	s.logger.Info().Uint("fixture_id", pair.Host.ID).Uint("opponent_team_id", request.OpponentTeamID).Msg("challenge sent")

	s.notifier.NotifyTeamAdmins(ctx, []uint{request.OpponentTeamID}, models.Notification{
		Title: "New match challenge",
		Body:  fmt.Sprintf("Your team has been challenged: %s", pair.Host.Title),
		URL:   fmt.Sprintf("/challenges/%s", token),
	})
	s.publish(ctx, models.EventChallengeSent, pair.Host.ID, challengePayload(pair, nil))

	return &pair, nil
}

// Accept confirms both fixtures in one transaction, consumes the invite token and issues the scoring token. An expired
// invite is unwound and committed before ExpiredError is returned.
func (s *ChallengeService) Accept(ctx context.Context, caller models.Caller, token string) (*models.FixturePair, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if token == "" {
		return nil, models.NewInvalidInputError(errors.New("challenge token is required"))
	}

	var pair models.FixturePair
	var unwound *models.FixturePair

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.lockChallenge(ctx, token)
		if err != nil {
			return err
		}

		if locked.Guest == nil {
			return models.NewConflictError(errors.New("challenge has no opponent fixture"))
		}

		if caller.TeamID != locked.Guest.TeamID {
			return models.NewForbiddenError(errors.New("only members of the challenged team can accept a challenge"))
		}

		if s.isExpired(locked.Host) {
			if _, err := s.unwind(ctx, *locked, nil); err != nil {
				return fmt.Errorf("failed to expire challenge: %w", err)
			}

			unwound = locked
			return nil
		}

		if !awaitingResponse(locked.Host.MatchStatus) || !awaitingResponse(locked.Guest.MatchStatus) {
			return models.NewConflictError(fmt.Errorf("challenge cannot be accepted, status is %s", locked.Host.MatchStatus))
		}

		if locked.Guest.LinkedFixtureID == nil || *locked.Guest.LinkedFixtureID != locked.Host.ID {
			return models.NewConflictError(errors.New("opponent fixture does not link back to the challenge"))
		}

		scoringToken, err := s.tokenGenerator.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate scoring token: %w", err)
		}

		kickoff := locked.Host.StartsAt
		if now := s.clock.Now(); now.After(kickoff) {
			kickoff = now
		}
		scoringTokenExpiresAt := kickoff.Add(s.config.ScoringTokenTTL)

		confirmed := models.Confirmed
		host, err := s.fixtureRepository.Update(ctx, locked.Host.ID, models.FixtureUpdate{
			MatchStatus:           &confirmed,
			ClearChallengeToken:   true,
			ScoringToken:          &scoringToken,
			ScoringTokenExpiresAt: &scoringTokenExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("failed to confirm host fixture %d: %w", locked.Host.ID, err)
		}

		guest, err := s.fixtureRepository.Update(ctx, locked.Guest.ID, models.FixtureUpdate{MatchStatus: &confirmed})
		if err != nil {
			return fmt.Errorf("failed to confirm guest fixture %d: %w", locked.Guest.ID, err)
		}

		pair = models.FixturePair{Host: *host, Guest: guest}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept challenge: %w", err)
	}

	if unwound != nil {
		s.expired(ctx, *unwound)
		return nil, models.NewExpiredError(errors.New("challenge has expired"))
	}

	s.logger.Info().Uint("fixture_id", pair.Host.ID).Uint("linked_fixture_id", pair.Guest.ID).Msg("challenge accepted")

	s.notifier.NotifyTeamAdmins(ctx, []uint{pair.Host.TeamID}, models.Notification{
		Title: "Challenge accepted",
		Body:  fmt.Sprintf("Your challenge has been accepted: %s", pair.Host.Title),
		URL:   fmt.Sprintf("/fixtures/%d", pair.Host.ID),
	})
	s.publish(ctx, models.EventChallengeAccepted, pair.Host.ID, challengePayload(pair, nil))

	return &pair, nil
}

// Reject cancels the host fixture, removes the opponent's fixture and unwinds the link.
func (s *ChallengeService) Reject(ctx context.Context, caller models.Caller, request models.RejectChallengeRequest) (*models.Fixture, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if request.Token == "" {
		return nil, models.NewInvalidInputError(errors.New("challenge token is required"))
	}

	var rejected models.FixturePair
	var host *models.Fixture
	isExpired := false

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.lockChallenge(ctx, request.Token)
		if err != nil {
			return err
		}

		if !caller.IsAdminOf(guestTeamID(*locked)) {
			return models.NewForbiddenError(errors.New("only an administrator of the challenged team can reject a challenge"))
		}

		rejected = *locked

		if s.isExpired(locked.Host) {
			if _, err := s.unwind(ctx, *locked, nil); err != nil {
				return fmt.Errorf("failed to expire challenge: %w", err)
			}

			isExpired = true
			return nil
		}

		if !awaitingResponse(locked.Host.MatchStatus) {
			return models.NewConflictError(fmt.Errorf("challenge cannot be rejected, status is %s", locked.Host.MatchStatus))
		}

		host, err = s.unwind(ctx, *locked, request.Reason)
		if err != nil {
			return fmt.Errorf("failed to unwind challenge: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject challenge: %w", err)
	}

	if isExpired {
		s.expired(ctx, rejected)
		return nil, models.NewExpiredError(errors.New("challenge has expired"))
	}

	s.logger.Info().Uint("fixture_id", host.ID).Msg("challenge rejected")

	body := fmt.Sprintf("Your challenge has been declined: %s", host.Title)
	if request.Reason != nil && *request.Reason != "" {
		body = fmt.Sprintf("%s (%s)", body, *request.Reason)
	}

	s.notifier.NotifyTeamAdmins(ctx, []uint{host.TeamID}, models.Notification{
		Title: "Challenge declined",
		Body:  body,
		URL:   fmt.Sprintf("/fixtures/%d", host.ID),
	})
	s.publish(ctx, models.EventChallengeRejected, host.ID, challengePayload(rejected, request.Reason))

	return host, nil
}

// ChangeStatus moves the addressed fixture and its counterpart to the target status in one transaction. Starting the
// match starts the timer, finishing or cancelling it stops the timer and retires the tokens.
func (s *ChallengeService) ChangeStatus(ctx context.Context, caller models.Caller, fixtureID uint, target models.MatchStatus) (*models.FixturePair, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if !settable(target) {
		return nil, models.NewInvalidInputError(fmt.Errorf("status %s cannot be set directly", target))
	}

	var pair models.FixturePair
	var from models.MatchStatus

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.pairResolver.LockPair(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixtures: %w", err)
		}

		if !isPairAdmin(caller, *locked) {
			return models.NewForbiddenError(errors.New("only an administrator of either team can change match status"))
		}

		addressed := locked.Host
		if locked.Guest != nil && locked.Guest.ID == fixtureID {
			addressed = *locked.Guest
		}

		from = addressed.MatchStatus
		if !canTransition(*locked, from, target) {
			return models.NewConflictError(fmt.Errorf("match status cannot change from %s to %s", from, target))
		}

		if locked.Guest != nil && locked.Guest.MatchStatus != locked.Host.MatchStatus {
			s.logger.Info().
				Uint("fixture_id", locked.Host.ID).
				Str("host_status", string(locked.Host.MatchStatus)).
				Str("guest_status", string(locked.Guest.MatchStatus)).
				Msg("fixture statuses diverged, mirroring target status")
		}

		update := models.FixtureUpdate{
			MatchStatus: &target,
			Timer:       timerFor(locked.Host.Timer, target, s.clock.Now()),
		}
		if target == models.Completed || target == models.Cancelled {
			update.ClearChallengeToken = true
			update.ClearScoringToken = true
		}

		host, err := s.fixtureRepository.Update(ctx, locked.Host.ID, update)
		if err != nil {
			return fmt.Errorf("failed to update fixture %d: %w", locked.Host.ID, err)
		}

		pair = models.FixturePair{Host: *host}
		if locked.Guest == nil {
			return nil
		}

		pair.Guest, err = s.fixtureRepository.Update(ctx, locked.Guest.ID, update)
		if err != nil {
			return fmt.Errorf("failed to update linked fixture %d: %w", locked.Guest.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change match status: %w", err)
	}

	s.logger.Info().Uint("fixture_id", fixtureID).Str("from", string(from)).Str("to", string(target)).Msg("match status changed")

	s.notifier.NotifyAttendees(ctx, pair.IDs(), statusNotification(pair.Host, target))
	s.publish(ctx, models.EventStatusChanged, pair.Host.ID, models.StatusChangedPayload{
		FixtureIDs: pair.IDs(),
		From:       from,
		To:         target,
		ChangedBy:  caller.UserID,
	})

	return &pair, nil
}

// lockChallenge resolves the host holding the invite token and locks both ends. The token is re-checked under the
// lock so a concurrent accept or reject wins exactly once.
func (s *ChallengeService) lockChallenge(ctx context.Context, token string) (*models.FixturePair, error) {
	fixture, err := s.fixtureRepository.FindByChallengeToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to find challenge: %w", err)
	}

	locked, err := s.pairResolver.LockPair(ctx, fixture.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock fixtures: %w", err)
	}

	if locked.Host.ID != fixture.ID || locked.Host.ChallengeToken == nil || *locked.Host.ChallengeToken != token {
		return nil, models.NewResourceNotFoundError(errors.New("challenge is not found"))
	}

	return locked, nil
}

func (s *ChallengeService) unwind(ctx context.Context, pair models.FixturePair, reason *string) (*models.Fixture, error) {
	cancelled := models.Cancelled
	host, err := s.fixtureRepository.Update(ctx, pair.Host.ID, models.FixtureUpdate{
		MatchStatus:         &cancelled,
		RejectionReason:     reason,
		ClearChallengeToken: true,
		ClearLink:           true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel host fixture %d: %w", pair.Host.ID, err)
	}

	if pair.Guest != nil {
		if err := s.fixtureRepository.Delete(ctx, pair.Guest.ID); err != nil {
			return nil, fmt.Errorf("failed to delete opponent fixture %d: %w", pair.Guest.ID, err)
		}
	}

	return host, nil
}

func (s *ChallengeService) expired(ctx context.Context, pair models.FixturePair) {
	s.logger.Info().Uint("fixture_id", pair.Host.ID).Msg("challenge expired")

	s.notifier.NotifyTeamAdmins(ctx, []uint{pair.Host.TeamID}, models.Notification{
		Title: "Challenge expired",
		Body:  fmt.Sprintf("Your challenge was not answered in time: %s", pair.Host.Title),
		URL:   fmt.Sprintf("/fixtures/%d", pair.Host.ID),
	})
	s.publish(ctx, models.EventChallengeExpired, pair.Host.ID, challengePayload(pair, nil))
}

func (s *ChallengeService) isExpired(host models.Fixture) bool {
	return host.ChallengeTokenExpiresAt != nil && !s.clock.Now().Before(*host.ChallengeTokenExpiresAt)
}

func (s *ChallengeService) publish(ctx context.Context, eventType string, fixtureID uint, payload any) {
	s.publisher.Publish(ctx, models.DomainEvent{
		Type:      eventType,
		FixtureID: fixtureID,
		Payload:   payload,
		CreatedAt: s.clock.Now(),
	})
}

func awaitingResponse(status models.MatchStatus) bool {
	return status == models.ChallengeSent || status == models.Pending
}

func settable(status models.MatchStatus) bool {
	switch status {
	case models.Confirmed, models.InProgress, models.Completed, models.Cancelled:
		return true
	default:
		return false
	}
}

// canTransition lists the moves ChangeStatus may make. A paired fixture is confirmed only by accepting the challenge.
func canTransition(pair models.FixturePair, from, to models.MatchStatus) bool {
	switch to {
	case models.Confirmed:
		return from == models.Draft && pair.Guest == nil && pair.Host.PairRole == models.Unpaired
	case models.InProgress:
		return from == models.Confirmed
	case models.Completed:
		return from == models.InProgress
	case models.Cancelled:
		return from == models.Draft || from == models.ChallengeSent || from == models.Pending ||
			from == models.Confirmed || from == models.InProgress
	default:
		return false
	}
}

func timerFor(timer models.MatchTimer, target models.MatchStatus, now time.Time) *models.MatchTimer {
	switch target {
	case models.InProgress:
		if timer.CurrentPhase == 0 {
			timer.CurrentPhase = 1
		}

		if !timer.Running() {
			timer.TimerStartedAt = &now
		}

		return &timer
	case models.Completed, models.Cancelled:
		if !timer.Running() {
			return nil
		}

		timer.ElapsedSeconds = phaseclock.ComputeElapsed(timer.ElapsedSeconds, timer.TimerStartedAt, now)
		timer.TimerStartedAt = nil

		return &timer
	default:
		return nil
	}
}

func isPairAdmin(caller models.Caller, pair models.FixturePair) bool {
	for _, teamID := range pair.TeamIDs() {
		if caller.IsAdminOf(teamID) {
			return true
		}
	}

	return false
}

func guestTeamID(pair models.FixturePair) uint {
	if pair.Guest != nil {
		return pair.Guest.TeamID
	}

	if pair.Host.OpponentTeamID != nil {
		return *pair.Host.OpponentTeamID
	}

	return 0
}

func challengePayload(pair models.FixturePair, reason *string) models.ChallengePayload {
	payload := models.ChallengePayload{
		HostFixtureID: pair.Host.ID,
		HostTeamID:    pair.Host.TeamID,
		GuestTeamID:   guestTeamID(pair),
		Reason:        reason,
	}

	if pair.Guest != nil {
		payload.GuestFixtureID = &pair.Guest.ID
	}

	return payload
}

func statusNotification(fixture models.Fixture, status models.MatchStatus) models.Notification {
	titles := map[models.MatchStatus]string{
		models.Confirmed:  "Match confirmed",
		models.InProgress: "Match started",
		models.Completed:  "Match finished",
		models.Cancelled:  "Match cancelled",
	}

	body := fixture.Title
	if status == models.Completed {
		body = fmt.Sprintf("%s finished %d:%d", fixture.Title, fixture.TeamAScore, fixture.TeamBScore)
	}

	return models.Notification{
		Title: titles[status],
		Body:  body,
		URL:   fmt.Sprintf("/fixtures/%d", fixture.ID),
	}
}
