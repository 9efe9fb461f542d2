package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gorm.io/gorm"
)

type GoalEventRepository struct {
	db *gorm.DB
}

func NewGoalEventRepository(db *gorm.DB) *GoalEventRepository {
	return &GoalEventRepository{db: db}
}

func (r *GoalEventRepository) Create(ctx context.Context, goal models.GoalEvent) (*models.GoalEvent, error) {
	g := GoalEvent{
		FixtureID:   goal.FixtureID,
		Quarter:     goal.Quarter,
		Minute:      goal.Minute,
		ScoringTeam: string(goal.ScoringTeam),
		ScorerID:    goal.ScorerID,
		AssistID:    goal.AssistID,
		IsOwnGoal:   goal.IsOwnGoal,
		RecordedBy:  goal.RecordedBy,
	}

	result := conn(ctx, r.db).Create(&g)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist: %w", goal.FixtureID, result.Error))
		}

		return nil, fmt.Errorf("failed to create goal event: %w", result.Error)
	}

	domain := toDomainGoalEvent(g)
	return &domain, nil
}

func (r *GoalEventRepository) Get(ctx context.Context, id uint) (*models.GoalEvent, error) {
	var goal GoalEvent

	result := conn(ctx, r.db).Where("id = ?", id).First(&goal)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("goal event with id %d not found: %w", id, result.Error))
		}

		return nil, fmt.Errorf("failed to get goal event: %w", result.Error)
	}

	domain := toDomainGoalEvent(goal)
	return &domain, nil
}

func (r *GoalEventRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&GoalEvent{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewResourceNotFoundError(fmt.Errorf("goal event with id %d not found", id))
	}

	return nil
}

func (r *GoalEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.GoalEvent, error) {
	var goals []GoalEvent

	result := conn(ctx, r.db).
		Where("fixture_id = ?", fixtureID).
		Order("quarter, minute NULLS LAST, id").
		Find(&goals)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list goal events: %w", result.Error)
	}

	return toDomainGoalEvents(goals), nil
}
