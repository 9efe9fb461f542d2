package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type FixtureRepository struct {
	store *Store
}

func (r *FixtureRepository) Get(ctx context.Context, id uint) (*models.Fixture, error) {
	return r.find(ctx, fmt.Sprintf("fixture with id %d", id), func(f models.Fixture) bool {
		return f.ID == id
	})
}

// GetForUpdate is Get: the store mutex already serializes transactions.
func (r *FixtureRepository) GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error) {
	return r.Get(ctx, id)
}

func (r *FixtureRepository) FindByChallengeToken(ctx context.Context, token string) (*models.Fixture, error) {
	return r.find(ctx, "fixture with challenge token", func(f models.Fixture) bool {
		return f.ChallengeToken != nil && *f.ChallengeToken == token
	})
}

func (r *FixtureRepository) FindByScoringToken(ctx context.Context, token string) (*models.Fixture, error) {
	return r.find(ctx, "fixture with scoring token", func(f models.Fixture) bool {
		return f.ScoringToken != nil && *f.ScoringToken == token
	})
}

func (r *FixtureRepository) FindByLinkedFixtureID(ctx context.Context, linkedFixtureID uint) (*models.Fixture, error) {
	return r.find(ctx, fmt.Sprintf("fixture linked to %d", linkedFixtureID), func(f models.Fixture) bool {
		return f.LinkedFixtureID != nil && *f.LinkedFixtureID == linkedFixtureID
	})
}

func (r *FixtureRepository) Create(ctx context.Context, fixture models.Fixture) (*models.Fixture, error) {
	var created models.Fixture

	err := r.store.access(ctx, func(data *state) error {
		if err := checkTokens(data, 0, fixture.ChallengeToken, fixture.ScoringToken); err != nil {
			return err
		}

		now := r.store.clock.Now()
		fixture.ID = r.store.nextID(data)
		fixture.CreatedAt = now
		fixture.UpdatedAt = now
		if fixture.MatchStatus == "" {
			fixture.MatchStatus = models.Draft
		}

		data.fixtures[fixture.ID] = fixture
		created = fixture

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fixture: %w", err)
	}

	return &created, nil
}

func (r *FixtureRepository) Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error) {
	var updated models.Fixture

	err := r.store.access(ctx, func(data *state) error {
		fixture, ok := data.fixtures[id]
		if !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture with id %d not found", id))
		}

		if err := checkTokens(data, id, update.ChallengeToken, update.ScoringToken); err != nil {
			return err
		}

		applyUpdate(&fixture, update)
		fixture.UpdatedAt = r.store.clock.Now()

		data.fixtures[id] = fixture
		updated = fixture

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update fixture: %w", err)
	}

	return &updated, nil
}

func (r *FixtureRepository) UpdateScores(ctx context.Context, fixtureIDs []uint, score models.Score) error {
	return r.store.access(ctx, func(data *state) error {
		for _, id := range fixtureIDs {
			if _, ok := data.fixtures[id]; !ok {
				return models.NewResourceNotFoundError(fmt.Errorf("fixture with id %d not found", id))
			}
		}

		for _, id := range fixtureIDs {
			fixture := data.fixtures[id]
			fixture.TeamAScore = score.TeamAScore
			fixture.TeamBScore = score.TeamBScore
			data.fixtures[id] = fixture
		}

		return nil
	})
}

// Delete removes the fixture with its events and referee assignments and unlinks fixtures pointing at it.
func (r *FixtureRepository) Delete(ctx context.Context, id uint) error {
	return r.store.access(ctx, func(data *state) error {
		if _, ok := data.fixtures[id]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture with id %d not found", id))
		}

		delete(data.fixtures, id)

		for fixtureID, fixture := range data.fixtures {
			if fixture.LinkedFixtureID != nil && *fixture.LinkedFixtureID == id {
				fixture.LinkedFixtureID = nil
				data.fixtures[fixtureID] = fixture
			}
		}

		deleteWhere(data.goals, func(g models.GoalEvent) bool { return g.FixtureID == id })
		deleteWhere(data.cards, func(c models.CardEvent) bool { return c.FixtureID == id })
		deleteWhere(data.substitutions, func(s models.SubstitutionEvent) bool { return s.FixtureID == id })
		deleteWhere(data.referees, func(a models.RefereeAssignment) bool { return a.FixtureID == id })

		return nil
	})
}

func (r *FixtureRepository) find(ctx context.Context, what string, match func(models.Fixture) bool) (*models.Fixture, error) {
	var found *models.Fixture

	err := r.store.access(ctx, func(data *state) error {
		for _, fixture := range data.fixtures {
			if !match(fixture) {
				continue
			}

			if found == nil || fixture.ID < found.ID {
				f := fixture
				found = &f
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, models.NewResourceNotFoundError(fmt.Errorf("%s not found", what))
	}

	return found, nil
}

func checkTokens(data *state, id uint, challengeToken, scoringToken *string) error {
	for _, fixture := range data.fixtures {
		if fixture.ID == id {
			continue
		}

		if challengeToken != nil && fixture.ChallengeToken != nil && *fixture.ChallengeToken == *challengeToken {
			return models.NewResourceAlreadyExistsError(errors.New("challenge token is already in use"))
		}

		if scoringToken != nil && fixture.ScoringToken != nil && *fixture.ScoringToken == *scoringToken {
			return models.NewResourceAlreadyExistsError(errors.New("scoring token is already in use"))
		}
	}

	return nil
}

func applyUpdate(f *models.Fixture, u models.FixtureUpdate) {
	if u.MatchStatus != nil {
		f.MatchStatus = *u.MatchStatus
	}

	if u.PairRole != nil {
		f.PairRole = *u.PairRole
	}

	if u.OpponentTeamID != nil {
		f.OpponentTeamID = u.OpponentTeamID
	}

	if u.LinkedFixtureID != nil {
		f.LinkedFixtureID = u.LinkedFixtureID
	}

	if u.RejectionReason != nil {
		f.RejectionReason = u.RejectionReason
	}

	if u.ChallengeToken != nil {
		f.ChallengeToken = u.ChallengeToken
	}

	if u.ChallengeTokenExpiresAt != nil {
		f.ChallengeTokenExpiresAt = u.ChallengeTokenExpiresAt
	}

	if u.ScoringToken != nil {
		f.ScoringToken = u.ScoringToken
	}

	if u.ScoringTokenExpiresAt != nil {
		f.ScoringTokenExpiresAt = u.ScoringTokenExpiresAt
	}

	if u.ClearLink {
		f.LinkedFixtureID = nil
		f.PairRole = models.Unpaired
		f.OpponentTeamID = nil
	}

	if u.ClearChallengeToken {
		f.ChallengeToken = nil
		f.ChallengeTokenExpiresAt = nil
	}

	if u.ClearScoringToken {
		f.ScoringToken = nil
		f.ScoringTokenExpiresAt = nil
	}

	if u.Timer != nil {
		f.Timer = *u.Timer
	}
}

func deleteWhere[T any](items map[uint]T, match func(T) bool) {
	for id, item := range items {
		if match(item) {
			delete(items, id)
		}
	}
}
