package matchevent

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type MatchEventService struct {
	txManager                   TxManager
	authorizer                  Authorizer
	fixtureRepository           FixtureRepository
	goalEventRepository         GoalEventRepository
	cardEventRepository         CardEventRepository
	substitutionEventRepository SubstitutionEventRepository
	scoreEngine                 ScoreEngine
	publisher                   EventPublisher
	clock                       Clock
	logger                      Logger
}

func NewMatchEventService(
	txManager TxManager,
	authorizer Authorizer,
	fixtureRepository FixtureRepository,
	goalEventRepository GoalEventRepository,
	cardEventRepository CardEventRepository,
	substitutionEventRepository SubstitutionEventRepository,
	scoreEngine ScoreEngine,
	publisher EventPublisher,
	clock Clock,
	logger Logger,
) *MatchEventService {
	return &MatchEventService{
		txManager:                   txManager,
		authorizer:                  authorizer,
		fixtureRepository:           fixtureRepository,
		goalEventRepository:         goalEventRepository,
		cardEventRepository:         cardEventRepository,
		substitutionEventRepository: substitutionEventRepository,
		scoreEngine:                 scoreEngine,
		publisher:                   publisher,
		clock:                       clock,
		logger:                      logger,
	}
}

// RecordGoal inserts the goal and recomputes the score of both fixtures in the same transaction.
func (s *MatchEventService) RecordGoal(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordGoalRequest) (*models.RecordedGoal, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if err := validateGoal(request); err != nil {
		return nil, err
	}

	capability, err := s.authorizer.Authorize(ctx, access, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize caller: %w", err)
	}

	var result models.RecordedGoal
	var linkedFixtureID *uint

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		fixture, err := s.lockLive(ctx, capability.FixtureID)
		if err != nil {
			return err
		}

		goal, err := s.goalEventRepository.Create(ctx, models.GoalEvent{
			FixtureID:   fixture.ID,
			Quarter:     request.Quarter,
			Minute:      request.Minute,
			ScoringTeam: request.ScoringTeam,
			ScorerID:    request.ScorerID,
			AssistID:    request.AssistID,
			IsOwnGoal:   request.IsOwnGoal,
			RecordedBy:  caller.UserID,
		})
		if err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		score, err := s.scoreEngine.Apply(ctx, fixture.ID, fixture.LinkedFixtureID)
		if err != nil {
			return fmt.Errorf("failed to apply score: %w", err)
		}

		result = models.RecordedGoal{Goal: *goal, Score: score}
		linkedFixtureID = fixture.LinkedFixtureID

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record goal: %w", err)
	}

	s.logger.Info().
		Uint("fixture_id", result.Goal.FixtureID).
		Uint("goal_id", result.Goal.ID).
		Int("team_a_score", result.Score.TeamAScore).
		Int("team_b_score", result.Score.TeamBScore).
		Msg("goal recorded")

	s.publish(ctx, models.EventGoalRecorded, result.Goal.FixtureID, models.MatchEventPayload{
		EventID:    result.Goal.ID,
		Quarter:    result.Goal.Quarter,
		Minute:     result.Goal.Minute,
		TeamSide:   result.Goal.ScoringTeam,
		RecordedBy: result.Goal.RecordedBy,
	})
	s.publishScore(ctx, result.Goal.FixtureID, linkedFixtureID, result.Score)

	return &result, nil
}

// DeleteGoal removes a goal and recomputes the score in the same transaction. The author or an administrator of
// either team may delete, regardless of match status.
func (s *MatchEventService) DeleteGoal(ctx context.Context, caller models.Caller, goalID uint) (*models.Score, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	var score models.Score
	var fixture *models.Fixture

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		goal, err := s.goalEventRepository.Get(ctx, goalID)
		if err != nil {
			return fmt.Errorf("failed to get goal: %w", err)
		}

		fixture, err = s.fixtureRepository.GetForUpdate(ctx, goal.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixture: %w", err)
		}

		if !canDelete(caller, goal.RecordedBy, *fixture) {
			return models.NewForbiddenError(errors.New("only the author or a team administrator can delete a goal"))
		}

		if err := s.goalEventRepository.Delete(ctx, goal.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		score, err = s.scoreEngine.Apply(ctx, fixture.ID, fixture.LinkedFixtureID)
		if err != nil {
			return fmt.Errorf("failed to apply score: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete goal %d: %w", goalID, err)
	}

	s.logger.Info().Uint("fixture_id", fixture.ID).Uint("goal_id", goalID).Msg("goal deleted")

	s.publish(ctx, models.EventGoalDeleted, fixture.ID, models.MatchEventPayload{EventID: goalID, RecordedBy: caller.UserID})
	s.publishScore(ctx, fixture.ID, fixture.LinkedFixtureID, score)

	return &score, nil
}

func (s *MatchEventService) RecordCard(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordCardRequest) (*models.CardEvent, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if err := validateCard(request); err != nil {
		return nil, err
	}

	capability, err := s.authorizer.Authorize(ctx, access, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize caller: %w", err)
	}

	var card *models.CardEvent
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		fixture, err := s.lockLive(ctx, capability.FixtureID)
		if err != nil {
			return err
		}

		card, err = s.cardEventRepository.Create(ctx, models.CardEvent{
			FixtureID:  fixture.ID,
			Quarter:    request.Quarter,
			Minute:     request.Minute,
			TeamSide:   request.TeamSide,
			PlayerID:   request.PlayerID,
			CardType:   request.CardType,
			RecordedBy: caller.UserID,
		})
		if err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record card: %w", err)
	}

	s.logger.Info().Uint("fixture_id", card.FixtureID).Uint("card_id", card.ID).Str("card_type", string(card.CardType)).Msg("card recorded")

	s.publish(ctx, models.EventCardRecorded, card.FixtureID, models.MatchEventPayload{
		EventID:    card.ID,
		Quarter:    card.Quarter,
		Minute:     card.Minute,
		TeamSide:   card.TeamSide,
		RecordedBy: card.RecordedBy,
	})

	return card, nil
}

func (s *MatchEventService) DeleteCard(ctx context.Context, caller models.Caller, cardID uint) error {
	if caller.UserID == 0 {
		return models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	var fixtureID uint
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		card, err := s.cardEventRepository.Get(ctx, cardID)
		if err != nil {
			return fmt.Errorf("failed to get card: %w", err)
		}

		fixture, err := s.fixtureRepository.GetForUpdate(ctx, card.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixture: %w", err)
		}

		if !canDelete(caller, card.RecordedBy, *fixture) {
			return models.NewForbiddenError(errors.New("only the author or a team administrator can delete a card"))
		}

		fixtureID = fixture.ID

		return s.cardEventRepository.Delete(ctx, card.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", cardID, err)
	}

	s.publish(ctx, models.EventCardDeleted, fixtureID, models.MatchEventPayload{EventID: cardID, RecordedBy: caller.UserID})

	return nil
}

func (s *MatchEventService) RecordSubstitution(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordSubstitutionRequest) (*models.SubstitutionEvent, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if err := validateSubstitution(request); err != nil {
		return nil, err
	}

	capability, err := s.authorizer.Authorize(ctx, access, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize caller: %w", err)
	}

	var substitution *models.SubstitutionEvent
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		fixture, err := s.lockLive(ctx, capability.FixtureID)
		if err != nil {
			return err
		}

		substitution, err = s.substitutionEventRepository.Create(ctx, models.SubstitutionEvent{
			FixtureID:   fixture.ID,
			Quarter:     request.Quarter,
			Minute:      request.Minute,
			TeamSide:    request.TeamSide,
			PlayerOutID: request.PlayerOutID,
			PlayerInID:  request.PlayerInID,
			RecordedBy:  caller.UserID,
		})
		if err != nil {
			return fmt.Errorf("failed to create substitution: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record substitution: %w", err)
	}

	s.logger.Info().Uint("fixture_id", substitution.FixtureID).Uint("substitution_id", substitution.ID).Msg("substitution recorded")

	s.publish(ctx, models.EventSubstitutionMade, substitution.FixtureID, models.MatchEventPayload{
		EventID:    substitution.ID,
		Quarter:    substitution.Quarter,
		Minute:     substitution.Minute,
		TeamSide:   substitution.TeamSide,
		RecordedBy: substitution.RecordedBy,
	})

	return substitution, nil
}

func (s *MatchEventService) DeleteSubstitution(ctx context.Context, caller models.Caller, substitutionID uint) error {
	if caller.UserID == 0 {
		return models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	var fixtureID uint
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		substitution, err := s.substitutionEventRepository.Get(ctx, substitutionID)
		if err != nil {
			return fmt.Errorf("failed to get substitution: %w", err)
		}

		fixture, err := s.fixtureRepository.GetForUpdate(ctx, substitution.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to lock fixture: %w", err)
		}

		if !canDelete(caller, substitution.RecordedBy, *fixture) {
			return models.NewForbiddenError(errors.New("only the author or a team administrator can delete a substitution"))
		}

		fixtureID = fixture.ID

		return s.substitutionEventRepository.Delete(ctx, substitution.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete substitution %d: %w", substitutionID, err)
	}

	s.publish(ctx, models.EventSubstitutionGone, fixtureID, models.MatchEventPayload{EventID: substitutionID, RecordedBy: caller.UserID})

	return nil
}

// ListEvents returns the event log of the pair the fixture belongs to.
func (s *MatchEventService) ListEvents(ctx context.Context, fixtureID uint) (*models.MatchEvents, error) {
	fixture, err := s.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	canonicalID := fixture.CanonicalID()

	goals, err := s.goalEventRepository.ListByFixture(ctx, canonicalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	cards, err := s.cardEventRepository.ListByFixture(ctx, canonicalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	substitutions, err := s.substitutionEventRepository.ListByFixture(ctx, canonicalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list substitutions: %w", err)
	}

	return &models.MatchEvents{
		Goals:         goals,
		Cards:         cards,
		Substitutions: substitutions,
	}, nil
}

// lockLive locks the fixture row and re-checks under the lock that the match is still live.
func (s *MatchEventService) lockLive(ctx context.Context, fixtureID uint) (*models.Fixture, error) {
	fixture, err := s.fixtureRepository.GetForUpdate(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock fixture: %w", err)
	}

	if fixture.MatchStatus != models.InProgress {
		return nil, models.NewConflictError(fmt.Errorf("match is not in progress, status is %s", fixture.MatchStatus))
	}

	return fixture, nil
}

func (s *MatchEventService) publishScore(ctx context.Context, fixtureID uint, linkedFixtureID *uint, score models.Score) {
	fixtureIDs := []uint{fixtureID}
	if linkedFixtureID != nil {
		fixtureIDs = append(fixtureIDs, *linkedFixtureID)
	}

	s.publish(ctx, models.EventScoreChanged, fixtureID, models.ScoreChangedPayload{
		FixtureIDs: fixtureIDs,
		TeamAScore: score.TeamAScore,
		TeamBScore: score.TeamBScore,
	})
}

func (s *MatchEventService) publish(ctx context.Context, eventType string, fixtureID uint, payload any) {
	s.publisher.Publish(ctx, models.DomainEvent{
		Type:      eventType,
		FixtureID: fixtureID,
		Payload:   payload,
		CreatedAt: s.clock.Now(),
	})
}

func canDelete(caller models.Caller, recordedBy uint, fixture models.Fixture) bool {
	if caller.UserID == recordedBy || caller.IsAdminOf(fixture.TeamID) {
		return true
	}

	return fixture.OpponentTeamID != nil && caller.IsAdminOf(*fixture.OpponentTeamID)
}

func validateMoment(quarter int, minute *int) error {
	if quarter < 1 {
		return models.NewInvalidInputError(errors.New("quarter must be at least 1"))
	}

	if minute != nil && *minute < 0 {
		return models.NewInvalidInputError(errors.New("minute cannot be negative"))
	}

	return nil
}

func validateGoal(request models.RecordGoalRequest) error {
	if err := validateMoment(request.Quarter, request.Minute); err != nil {
		return err
	}

	if !request.ScoringTeam.Valid() {
		return models.NewInvalidInputError(fmt.Errorf("scoring team %q is invalid", request.ScoringTeam))
	}

	if request.ScorerID != nil && request.AssistID != nil && *request.ScorerID == *request.AssistID {
		return models.NewInvalidInputError(errors.New("scorer cannot assist their own goal"))
	}

	return nil
}

func validateCard(request models.RecordCardRequest) error {
	if err := validateMoment(request.Quarter, request.Minute); err != nil {
		return err
	}

	if !request.TeamSide.Valid() {
		return models.NewInvalidInputError(fmt.Errorf("team side %q is invalid", request.TeamSide))
	}

	if !request.CardType.Valid() {
		return models.NewInvalidInputError(fmt.Errorf("card type %q is invalid", request.CardType))
	}

	return nil
}

func validateSubstitution(request models.RecordSubstitutionRequest) error {
	if err := validateMoment(request.Quarter, request.Minute); err != nil {
		return err
	}

	if !request.TeamSide.Valid() {
		return models.NewInvalidInputError(fmt.Errorf("team side %q is invalid", request.TeamSide))
	}

	if request.PlayerOutID != nil && request.PlayerInID != nil && *request.PlayerOutID == *request.PlayerInID {
		return models.NewInvalidInputError(errors.New("player cannot be substituted by themselves"))
	}

	return nil
}
