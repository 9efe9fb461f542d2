package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gorm.io/gorm"
)

type CardEventRepository struct {
	db *gorm.DB
}

func NewCardEventRepository(db *gorm.DB) *CardEventRepository {
	return &CardEventRepository{db: db}
}

func (r *CardEventRepository) Create(ctx context.Context, card models.CardEvent) (*models.CardEvent, error) {
	c := CardEvent{
		FixtureID:  card.FixtureID,
		Quarter:    card.Quarter,
		Minute:     card.Minute,
		TeamSide:   string(card.TeamSide),
		PlayerID:   card.PlayerID,
		CardType:   string(card.CardType),
		RecordedBy: card.RecordedBy,
	}

	result := conn(ctx, r.db).Create(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist: %w", card.FixtureID, result.Error))
		}

		return nil, fmt.Errorf("failed to create card event: %w", result.Error)
	}

	domain := toDomainCardEvent(c)
	return &domain, nil
}

func (r *CardEventRepository) Get(ctx context.Context, id uint) (*models.CardEvent, error) {
	var card CardEvent

	result := conn(ctx, r.db).Where("id = ?", id).First(&card)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, models.NewResourceNotFoundError(fmt.Errorf("card event with id %d not found: %w", id, result.Error))
		}

		return nil, fmt.Errorf("failed to get card event: %w", result.Error)
	}

	domain := toDomainCardEvent(card)
	return &domain, nil
}

func (r *CardEventRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&CardEvent{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewResourceNotFoundError(fmt.Errorf("card event with id %d not found", id))
	}

	return nil
}

func (r *CardEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.CardEvent, error) {
	var cards []CardEvent

	result := conn(ctx, r.db).
		Where("fixture_id = ?", fixtureID).
		Order("quarter, minute NULLS LAST, id").
		Find(&cards)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list card events: %w", result.Error)
	}

	return toDomainCardEvents(cards), nil
}
