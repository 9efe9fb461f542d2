package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RefereeRepository struct {
	db *gorm.DB
}

func NewRefereeRepository(db *gorm.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) Create(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error) {
	a := RefereeAssignment{
		FixtureID:     assignment.FixtureID,
		RefereeUserID: assignment.RefereeUserID,
		RefereeName:   assignment.RefereeName,
		Status:        string(assignment.Status),
	}

	result := conn(ctx, r.db).Create(&a)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist: %w", assignment.FixtureID, result.Error))
		}

		if isDuplicateError(result.Error) {
			return nil, models.NewResourceAlreadyExistsError(fmt.Errorf("referee is already assigned: %w", result.Error))
		}

		return nil, fmt.Errorf("failed to create referee assignment: %w", result.Error)
	}

	domain := toDomainRefereeAssignment(a)
	return &domain, nil
}

func (r *RefereeRepository) Get(ctx context.Context, id uint) (*models.RefereeAssignment, error) {
	return r.one(conn(ctx, r.db), id)
}

func (r *RefereeRepository) GetForUpdate(ctx context.Context, id uint) (*models.RefereeAssignment, error) {
	return r.one(conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *RefereeRepository) Update(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error) {
	a := RefereeAssignment{ID: assignment.ID}
	updates := RefereeAssignment{
		ApprovedByHostTeam:     assignment.ApprovedByHostTeam,
		ApprovedByOpponentTeam: assignment.ApprovedByOpponentTeam,
		Status:                 string(assignment.Status),
	}

	result := conn(ctx, r.db).
		Model(&a).
		Select("ApprovedByHostTeam", "ApprovedByOpponentTeam", "Status").
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update referee assignment: %w", result.Error)
	}

	return r.Get(ctx, assignment.ID)
}

func (r *RefereeRepository) one(query *gorm.DB, id uint) (*models.RefereeAssignment, error) {
	var assignment RefereeAssignment

	result := query.Where("id = ?", id).First(&assignment)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("referee assignment with id %d not found: %w", id, result.Error))
		}

		return nil, fmt.Errorf("failed to get referee assignment: %w", result.Error)
	}

	domain := toDomainRefereeAssignment(assignment)
	return &domain, nil
}
