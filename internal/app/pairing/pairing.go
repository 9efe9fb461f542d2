package pairing

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type Resolver struct {
	fixtureRepository FixtureRepository
	logger            Logger
}

func NewResolver(fixtureRepository FixtureRepository, logger Logger) *Resolver {
	return &Resolver{fixtureRepository: fixtureRepository, logger: logger}
}

// LockPair locks the fixture and its counterpart, host first, and returns both. The counterpart is found through the
// forward link, or through a reverse lookup when the addressed fixture holds no link. The fixture holding the link is
// the host unless it is marked as guest; the missing link is written onto the other end before returning. Must run
// inside a transaction.
func (r *Resolver) LockPair(ctx context.Context, fixtureID uint) (*models.FixturePair, error) {
	fixture, err := r.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	hostID := fixture.ID
	var guestID *uint
	var repair *models.PairRole

	switch {
	case fixture.LinkedFixtureID != nil && fixture.PairRole == models.GuestRole:
		hostID = *fixture.LinkedFixtureID
		guestID = &fixture.ID
	case fixture.LinkedFixtureID != nil:
		guestID = fixture.LinkedFixtureID
	default:
		referencing, err := r.fixtureRepository.FindByLinkedFixtureID(ctx, fixture.ID)
		if err != nil && !errors.As(err, &models.ResourceNotFoundError{}) {
			return nil, fmt.Errorf("failed to find fixture linking to fixture %d: %w", fixture.ID, err)
		}

		if referencing != nil && referencing.PairRole == models.GuestRole {
			guestID = &referencing.ID
			role := models.HostRole
			repair = &role
		} else if referencing != nil {
			hostID = referencing.ID
			guestID = &fixture.ID
			role := models.GuestRole
			repair = &role
		}
	}

	host, err := r.fixtureRepository.GetForUpdate(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock host fixture %d: %w", hostID, err)
	}

	pair := models.FixturePair{Host: *host}
	if guestID == nil {
		return &pair, nil
	}

	guest, err := r.fixtureRepository.GetForUpdate(ctx, *guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock guest fixture %d: %w", *guestID, err)
	}

	switch {
	case repair == nil:
	case *repair == models.HostRole:
		host, err = r.fixtureRepository.Update(ctx, host.ID, models.FixtureUpdate{
			LinkedFixtureID: &guest.ID,
			PairRole:        repair,
			OpponentTeamID:  &guest.TeamID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to repair link of fixture %d: %w", hostID, err)
		}

		pair.Host = *host
		r.logger.Info().Uint("fixture_id", host.ID).Uint("linked_fixture_id", guest.ID).Msg("repaired missing fixture link")
	default:
		guest, err = r.fixtureRepository.Update(ctx, guest.ID, models.FixtureUpdate{
			LinkedFixtureID: &host.ID,
			PairRole:        repair,
			OpponentTeamID:  &host.TeamID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to repair link of fixture %d: %w", *guestID, err)
		}

		r.logger.Info().Uint("fixture_id", guest.ID).Uint("linked_fixture_id", host.ID).Msg("repaired missing fixture link")
	}

	pair.Guest = guest

	return &pair, nil
}
