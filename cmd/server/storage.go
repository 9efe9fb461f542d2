package main

import (
	"context"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/memory"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/repository"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/postgres"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type txManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type fixtureRepository interface {
	Get(ctx context.Context, id uint) (*models.Fixture, error)
	GetForUpdate(ctx context.Context, id uint) (*models.Fixture, error)
	FindByChallengeToken(ctx context.Context, token string) (*models.Fixture, error)
	FindByScoringToken(ctx context.Context, token string) (*models.Fixture, error)
	FindByLinkedFixtureID(ctx context.Context, linkedFixtureID uint) (*models.Fixture, error)
	Create(ctx context.Context, fixture models.Fixture) (*models.Fixture, error)
	Update(ctx context.Context, id uint, update models.FixtureUpdate) (*models.Fixture, error)
	UpdateScores(ctx context.Context, fixtureIDs []uint, score models.Score) error
	Delete(ctx context.Context, id uint) error
}

type goalEventRepository interface {
	Create(ctx context.Context, goal models.GoalEvent) (*models.GoalEvent, error)
	Get(ctx context.Context, id uint) (*models.GoalEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.GoalEvent, error)
}

type cardEventRepository interface {
	Create(ctx context.Context, card models.CardEvent) (*models.CardEvent, error)
	Get(ctx context.Context, id uint) (*models.CardEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.CardEvent, error)
}

type substitutionEventRepository interface {
	Create(ctx context.Context, substitution models.SubstitutionEvent) (*models.SubstitutionEvent, error)
	Get(ctx context.Context, id uint) (*models.SubstitutionEvent, error)
	Delete(ctx context.Context, id uint) error
	ListByFixture(ctx context.Context, fixtureID uint) ([]models.SubstitutionEvent, error)
}

type refereeRepository interface {
	Create(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error)
	Get(ctx context.Context, id uint) (*models.RefereeAssignment, error)
	GetForUpdate(ctx context.Context, id uint) (*models.RefereeAssignment, error)
	Update(ctx context.Context, assignment models.RefereeAssignment) (*models.RefereeAssignment, error)
}

type rosterRepository interface {
	ListAttendingUserIDs(ctx context.Context, fixtureID uint) ([]uint, error)
	ListTeamAdminIDs(ctx context.Context, teamID uint) ([]uint, error)
	IsTeamAdmin(ctx context.Context, userID, teamID uint) (bool, error)
	IsTeamMember(ctx context.Context, userID, teamID uint) (bool, error)
}

type storage struct {
	txManager     txManager
	fixtures      fixtureRepository
	goals         goalEventRepository
	cards         cardEventRepository
	substitutions substitutionEventRepository
	referees      refereeRepository
	roster        rosterRepository
}

func openStorage(ctx context.Context, cfg config.Server, clock clockwork.Clock, logger *zerolog.Logger) (*storage, error) {
	switch cfg.App.Storage {
	case config.StoragePostgres:
		db := postgres.EstablishDatabaseConnection(cfg.PG)

		return &storage{
			txManager:     repository.NewTxManager(db),
			fixtures:      repository.NewFixtureRepository(db),
			goals:         repository.NewGoalEventRepository(db),
			cards:         repository.NewCardEventRepository(db),
			substitutions: repository.NewSubstitutionEventRepository(db),
			referees:      repository.NewRefereeRepository(db),
			roster:        repository.NewRosterRepository(postgres.SharedSQLX(db)),
		}, nil
	case config.StorageMemory:
		store := memory.NewStore(clock)

		if cfg.App.RosterFile != "" {
			if err := store.Roster().SeedRoster(ctx, cfg.App.RosterFile); err != nil {
				return nil, fmt.Errorf("failed to seed roster: %w", err)
			}
		}

		logger.Info().Msg("using in-memory storage, data is lost on restart")

		return &storage{
			txManager:     store,
			fixtures:      store.Fixtures(),
			goals:         store.Goals(),
			cards:         store.Cards(),
			substitutions: store.Substitutions(),
			referees:      store.Referees(),
			roster:        store.Roster(),
		}, nil
	default:
		return nil, fmt.Errorf("storage %q is not supported", cfg.App.Storage)
	}
}
