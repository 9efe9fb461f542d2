package score

import (
	"context"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type ScoreService struct {
	goalEventRepository GoalEventRepository
	fixtureRepository   FixtureRepository
}

func NewScoreService(goalEventRepository GoalEventRepository, fixtureRepository FixtureRepository) *ScoreService {
	return &ScoreService{
		goalEventRepository: goalEventRepository,
		fixtureRepository:   fixtureRepository,
	}
}

// Calculate derives the score from the full goal log. An own goal counts for the side opposite to its ScoringTeam.
func Calculate(goals []models.GoalEvent) models.Score {
	var score models.Score
	for _, goal := range goals {
		side := goal.ScoringTeam
		if goal.IsOwnGoal {
			side = opposite(side)
		}

		switch side {
		case models.TeamA:
			score.TeamAScore++
		case models.TeamB:
			score.TeamBScore++
		}
	}

	return score
}

func (s *ScoreService) Recalculate(ctx context.Context, fixtureID uint) (models.Score, error) {
	goals, err := s.goalEventRepository.ListByFixture(ctx, fixtureID)
	if err != nil {
		return models.Score{}, fmt.Errorf("failed to list goals of fixture %d: %w", fixtureID, err)
	}

	return Calculate(goals), nil
}

// Apply recomputes the score from the goal log of fixtureID and writes it to the fixture and, when present, its linked
// fixture. It must run inside the transaction that changed the goal log.
func (s *ScoreService) Apply(ctx context.Context, fixtureID uint, linkedFixtureID *uint) (models.Score, error) {
	score, err := s.Recalculate(ctx, fixtureID)
	if err != nil {
		return models.Score{}, fmt.Errorf("failed to recalculate score: %w", err)
	}

	fixtureIDs := []uint{fixtureID}
	if linkedFixtureID != nil {
		fixtureIDs = append(fixtureIDs, *linkedFixtureID)
	}

	if err := s.fixtureRepository.UpdateScores(ctx, fixtureIDs, score); err != nil {
		return models.Score{}, fmt.Errorf("failed to update scores of fixtures %v: %w", fixtureIDs, err)
	}

	return score, nil
}

func opposite(side models.TeamSide) models.TeamSide {
	switch side {
	case models.TeamA:
		return models.TeamB
	case models.TeamB:
		return models.TeamA
	default:
		return side
	}
}
