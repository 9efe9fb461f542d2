package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type RefereeRepository struct {
	store *Store
}

func (r *RefereeRepository) Create(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error) {
	err := r.store.access(ctx, func(data *state) error {
		if _, ok := data.fixtures[assignment.FixtureID]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist", assignment.FixtureID))
		}

		for _, existing := range data.referees {
			if existing.FixtureID == assignment.FixtureID && existing.RefereeUserID != nil && assignment.RefereeUserID != nil &&
				*existing.RefereeUserID == *assignment.RefereeUserID {
				return models.NewResourceAlreadyExistsError(errors.New("referee is already assigned"))
			}
		}

		assignment.ID = r.store.nextID(data)
		assignment.CreatedAt = r.store.clock.Now()
		data.referees[assignment.ID] = assignment

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create referee assignment: %w", err)
	}

	return &assignment, nil
}

func (r *RefereeRepository) Get(ctx context.Context, id uint) (*models.RefereeAssignment, error) {
	return get(ctx, r.store, "referee assignment", id, func(data *state) map[uint]models.RefereeAssignment { return data.referees })
}

func (r *RefereeRepository) GetForUpdate(ctx context.Context, id uint) (*models.RefereeAssignment, error) {
	return r.Get(ctx, id)
}

func (r *RefereeRepository) Update(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error) {
	var updated models.RefereeAssignment

	err := r.store.access(ctx, func(data *state) error {
		stored, ok := data.referees[assignment.ID]
		if !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("referee assignment with id %d not found", assignment.ID))
		}

		stored.ApprovedByHostTeam = assignment.ApprovedByHostTeam
		stored.ApprovedByOpponentTeam = assignment.ApprovedByOpponentTeam
		stored.Status = assignment.Status
		data.referees[assignment.ID] = stored
		updated = stored

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update referee assignment: %w", err)
	}

	return &updated, nil
}
