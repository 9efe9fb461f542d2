package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gorm.io/gorm"
)

type SubstitutionEventRepository struct {
	db *gorm.DB
}

func NewSubstitutionEventRepository(db *gorm.DB) *SubstitutionEventRepository {
	return &SubstitutionEventRepository{db: db}
}

func (r *SubstitutionEventRepository) Create(ctx context.Context, substitution models.SubstitutionEvent) (*models.SubstitutionEvent, error) {
	s := SubstitutionEvent{
		FixtureID:   substitution.FixtureID,
		Quarter:     substitution.Quarter,
		Minute:      substitution.Minute,
		TeamSide:    string(substitution.TeamSide),
		PlayerOutID: substitution.PlayerOutID,
		PlayerInID:  substitution.PlayerInID,
		RecordedBy:  substitution.RecordedBy,
	}

	result := conn(ctx, r.db).Create(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist: %w", substitution.FixtureID, result.Error))
		}

		return nil, fmt.Errorf("failed to create substitution event: %w", result.Error)
	}

	domain := toDomainSubstitutionEvent(s)
	return &domain, nil
}

func (r *SubstitutionEventRepository) Get(ctx context.Context, id uint) (*models.SubstitutionEvent, error) {
	var substitution SubstitutionEvent

	result := conn(ctx, r.db).Where("id = ?", id).First(&substitution)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("substitution event with id %d not found: %w", id, result.Error))
		}

		return nil, fmt.Errorf("failed to get substitution event: %w", result.Error)
	}

	domain := toDomainSubstitutionEvent(substitution)
	return &domain, nil
}

func (r *SubstitutionEventRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&SubstitutionEvent{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete substitution event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewResourceNotFoundError(fmt.Errorf("substitution event with id %d not found", id))
	}

	return nil
}

func (r *SubstitutionEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.SubstitutionEvent, error) {
	var substitutions []SubstitutionEvent

	result := conn(ctx, r.db).
		Where("fixture_id = ?", fixtureID).
		Order("quarter, minute NULLS LAST, id").
		Find(&substitutions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list substitution events: %w", result.Error)
	}

	return toDomainSubstitutionEvents(substitutions), nil
}
