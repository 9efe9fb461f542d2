package repository

import (
	"context"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FixtureRepository struct {
	db *gorm.DB
}

func NewFixtureRepository(db *gorm.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) Get(ctx context.Context, id uint) (*models.Fixture, error) {
	return r.one(conn(ctx, r.db).Where("id = ?", id), fmt.Sprintf("fixture with id %d", id))
}

// GetForUpdate locks the fixture row until the surrounding transaction ends.
func (r *FixtureRepository) GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error) {
	query := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)

	return r.one(query, fmt.Sprintf("fixture with id %d", id))
}

func (r *FixtureRepository) FindByChallengeToken(ctx context.Context, token string) (*models.Fixture, error) {
	return r.one(conn(ctx, r.db).Where("challenge_token = ?", token), "fixture with challenge token")
}

func (r *FixtureRepository) FindByScoringToken(ctx context.Context, token string) (*models.Fixture, error) {
	return r.one(conn(ctx, r.db).Where("scoring_token = ?", token), "fixture with scoring token")
}

func (r *FixtureRepository) FindByLinkedFixtureID(ctx context.Context, linkedFixtureID uint) (*models.Fixture, error) {
	query := conn(ctx, r.db).Where("linked_fixture_id = ?", linkedFixtureID).Order("id")

	return r.one(query, fmt.Sprintf("fixture linked to %d", linkedFixtureID))
}

func (r *FixtureRepository) Create(ctx context.Context, fixture models.Fixture) (*models.Fixture, error) {
	f := fromDomainFixture(fixture)
	f.ID = 0

	result := conn(ctx, r.db).Create(&f)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return nil, models.NewResourceAlreadyExistsError(fmt.Errorf("fixture already exists: %w", result.Error))
		}

		return nil, fmt.Errorf("failed to create fixture: %w", result.Error)
	}

	domain := toDomainFixture(f)
	return &domain, nil
}

func (r *FixtureRepository) Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error) {
	columns := fixtureColumns(update)
	if len(columns) > 0 {
		result := conn(ctx, r.db).Model(&Fixture{ID: id}).Updates(columns)
		if result.Error != nil {
			if isDuplicateError(result.Error) {
				return nil, models.NewResourceAlreadyExistsError(fmt.Errorf("fixture token already exists: %w", result.Error))
			}

			return nil, fmt.Errorf("failed to update fixture: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("fixture with id %d not found", id))
		}
	}

	return r.Get(ctx, id)
}

// UpdateScores writes one score onto every given fixture.
func (r *FixtureRepository) UpdateScores(ctx context.Context, fixtureIDs []uint, score models.Score) error {
	result := conn(ctx, r.db).
		Model(&Fixture{}).
		Where("id IN ?", fixtureIDs).
		Updates(map[string]any{
			"team_a_score": score.TeamAScore,
			"team_b_score": score.TeamBScore,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update fixture scores: %w", result.Error)
	}

	if int(result.RowsAffected) != len(fixtureIDs) {
		return fmt.Errorf("expected to update %d fixtures, updated %d", len(fixtureIDs), result.RowsAffected)
	}

	return nil
}

func (r *FixtureRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&Fixture{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixture: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewResourceNotFoundError(fmt.Errorf("fixture with id %d not found", id))
	}

	return nil
}

func (r *FixtureRepository) one(query *gorm.DB, what string) (*models.Fixture, error) {
	var fixture Fixture

	result := query.First(&fixture)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("%s not found: %w", what, result.Error))
		}

		return nil, fmt.Errorf("failed to find fixture: %w", result.Error)
	}

	domain := toDomainFixture(fixture)
	return &domain, nil
}
