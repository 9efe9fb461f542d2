package authorizer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

// AuthorizerService decides whether a caller may write live events for a match. Nothing is cached: every call reads
// the current fixture state and attendance.
type AuthorizerService struct {
	fixtureRepository FixtureRepository
	rosterRepository  RosterRepository
	clock             Clock
}

func NewAuthorizerService(fixtureRepository FixtureRepository, rosterRepository RosterRepository, clock Clock) *AuthorizerService {
	return &AuthorizerService{
		fixtureRepository: fixtureRepository,
		rosterRepository:  rosterRepository,
		clock:             clock,
	}
}

func (s *AuthorizerService) Authorize(ctx context.Context, access models.MatchAccess, caller models.Caller) (*models.Capability, error) {
	if access.Token != "" {
		return s.AuthorizeToken(ctx, access.Token, caller)
	}

	return s.AuthorizeFixture(ctx, access.FixtureID, caller)
}

func (s *AuthorizerService) AuthorizeToken(ctx context.Context, token string, caller models.Caller) (*models.Capability, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	fixture, err := s.fixtureRepository.FindByScoringToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to find fixture by scoring token: %w", err)
	}

	if fixture.ScoringTokenExpiresAt != nil && !s.clock.Now().Before(*fixture.ScoringTokenExpiresAt) {
		return nil, models.NewExpiredError(errors.New("scoring token has expired"))
	}

	return s.authorize(ctx, *fixture, caller)
}

// AuthorizeFixture is the direct path: either end of a pair may be addressed, the capability always points at the
// host fixture.
func (s *AuthorizerService) AuthorizeFixture(ctx context.Context, fixtureID uint, caller models.Caller) (*models.Capability, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	fixture, err := s.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	if canonicalID := fixture.CanonicalID(); canonicalID != fixture.ID {
		fixture, err = s.fixtureRepository.Get(ctx, canonicalID)
		if err != nil {
			return nil, fmt.Errorf("failed to get host fixture: %w", err)
		}
	}

	return s.authorize(ctx, *fixture, caller)
}

func (s *AuthorizerService) authorize(ctx context.Context, host models.Fixture, caller models.Caller) (*models.Capability, error) {
	if host.MatchStatus != models.InProgress {
		return nil, models.NewConflictError(fmt.Errorf("match is not in progress, status is %s", host.MatchStatus))
	}

	role, attendanceFixtureID, err := s.side(ctx, host, caller)
	if err != nil {
		return nil, err
	}

	capability := &models.Capability{
		FixtureID:       host.ID,
		LinkedFixtureID: host.LinkedFixtureID,
		CallerRole:      role,
		Fixture:         host,
	}

	if caller.IsAdmin {
		return capability, nil
	}

	attending, err := s.rosterRepository.ListAttendingUserIDs(ctx, attendanceFixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees of fixture %d: %w", attendanceFixtureID, err)
	}

	if !slices.Contains(attending, caller.UserID) {
		return nil, models.NewForbiddenError(errors.New("caller is neither attending the match nor a team administrator"))
	}

	return capability, nil
}

// side returns which end of the pair the caller's team owns and the fixture whose attendance list applies to it.
func (s *AuthorizerService) side(ctx context.Context, host models.Fixture, caller models.Caller) (models.PairRole, uint, error) {
	if caller.TeamID == host.TeamID {
		return models.HostRole, host.ID, nil
	}

	if host.LinkedFixtureID == nil {
		return "", 0, models.NewForbiddenError(errors.New("caller's team does not play in this match"))
	}

	guest, err := s.fixtureRepository.Get(ctx, *host.LinkedFixtureID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get linked fixture: %w", err)
	}

	if caller.TeamID != guest.TeamID {
		return "", 0, models.NewForbiddenError(errors.New("caller's team does not play in this match"))
	}

	return models.GuestRole, guest.ID, nil
}
