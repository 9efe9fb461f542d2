package score_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/score"
	"github.com/huhyoujung/footballlog-sub002/internal/app/score/mocks"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/stretchr/testify/assert"
)

func goal(side models.TeamSide, ownGoal bool) models.GoalEvent {
	return testutils.FakeGoalEvent(func(g *models.GoalEvent) {
		g.ScoringTeam = side
		g.IsOwnGoal = ownGoal
	})
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		goals  []models.GoalEvent
		result models.Score
	}{
		{
			name:   "no goals is a goalless draw",
			result: models.Score{},
		},
		{
			name:   "regular goals count for the scoring team",
			goals:  []models.GoalEvent{goal(models.TeamA, false), goal(models.TeamA, false), goal(models.TeamB, false)},
			result: models.Score{TeamAScore: 2, TeamBScore: 1},
		},
		{
			name:   "own goal counts for the opposite team",
			goals:  []models.GoalEvent{goal(models.TeamA, true)},
			result: models.Score{TeamAScore: 0, TeamBScore: 1},
		},
		{
			name:   "mixed regular and own goals",
			goals:  []models.GoalEvent{goal(models.TeamA, false), goal(models.TeamB, true), goal(models.TeamB, false), goal(models.TeamA, true)},
			result: models.Score{TeamAScore: 2, TeamBScore: 2},
		},
		{
			name:   "goals with an unknown side are ignored",
			goals:  []models.GoalEvent{goal("TEAM_C", false), goal("TEAM_C", true), goal(models.TeamB, false)},
			result: models.Score{TeamBScore: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, score.Calculate(tt.goals))
		})
	}
}

func TestCalculate_IsOrderIndependent(t *testing.T) {
	goals := []models.GoalEvent{goal(models.TeamA, false), goal(models.TeamB, true), goal(models.TeamB, false)}
	reversed := []models.GoalEvent{goals[2], goals[1], goals[0]}

	assert.Equal(t, score.Calculate(goals), score.Calculate(reversed))
	assert.Equal(t, score.Calculate(goals), score.Calculate(goals))
}

func TestScoreService_Apply(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	fixtureID := testutils.FakeID()
	linkedFixtureID := testutils.FakeID()
	goals := []models.GoalEvent{goal(models.TeamA, false), goal(models.TeamA, true), goal(models.TeamA, false)}
	expected := models.Score{TeamAScore: 2, TeamBScore: 1}

	tests := []struct {
		name                string
		linkedFixtureID     *uint
		goalEventRepository func(t *testing.T) *mocks.GoalEventRepository
		fixtureRepository   func(t *testing.T) *mocks.FixtureRepository
		result              models.Score
		expectedErr         error
	}{
		{
			name: "it returns an error when goal listing fails",
			goalEventRepository: func(t *testing.T) *mocks.GoalEventRepository {
				t.Helper()
				m := mocks.NewGoalEventRepository(t)
				m.On("ListByFixture", ctx, fixtureID).Return(nil, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to recalculate score: %w", fmt.Errorf("failed to list goals of fixture %d: %w", fixtureID, errUnexpected)),
		},
		{
			name: "it returns an error when score update fails",
			goalEventRepository: func(t *testing.T) *mocks.GoalEventRepository {
				t.Helper()
				m := mocks.NewGoalEventRepository(t)
				m.On("ListByFixture", ctx, fixtureID).Return(goals, nil).Once()
				return m
			},
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("UpdateScores", ctx, []uint{fixtureID}, expected).Return(errUnexpected).Once()
				return m
			},
			expectedErr: errUnexpected,
		},
		{
			name: "success - it writes the score of an unpaired fixture",
			goalEventRepository: func(t *testing.T) *mocks.GoalEventRepository {
				t.Helper()
				m := mocks.NewGoalEventRepository(t)
				m.On("ListByFixture", ctx, fixtureID).Return(goals, nil).Once()
				return m
			},
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("UpdateScores", ctx, []uint{fixtureID}, expected).Return(nil).Once()
				return m
			},
			result: expected,
		},
		{
			name:            "success - it writes the same score to both ends of a pair",
			linkedFixtureID: &linkedFixtureID,
			goalEventRepository: func(t *testing.T) *mocks.GoalEventRepository {
				t.Helper()
				m := mocks.NewGoalEventRepository(t)
				m.On("ListByFixture", ctx, fixtureID).Return(goals, nil).Once()
				return m
			},
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("UpdateScores", ctx, []uint{fixtureID, linkedFixtureID}, expected).Return(nil).Once()
				return m
			},
			result: expected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var goalEventRepository *mocks.GoalEventRepository
			if tt.goalEventRepository != nil {
				goalEventRepository = tt.goalEventRepository(t)
			}

			var fixtureRepository *mocks.FixtureRepository
			if tt.fixtureRepository != nil {
				fixtureRepository = tt.fixtureRepository(t)
			}

			ss := score.NewScoreService(goalEventRepository, fixtureRepository)

			actual, err := ss.Apply(ctx, fixtureID, tt.linkedFixtureID)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
