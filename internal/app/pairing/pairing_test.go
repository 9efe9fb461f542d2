package pairing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/pairing"
	"github.com/huhyoujung/footballlog-sub002/internal/app/pairing/mocks"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolver_LockPair(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	host, guest := testutils.FakePair(models.Confirmed)
	unpaired := testutils.FakeFixture()

	legacyHost := host
	legacyHost.LinkedFixtureID = nil
	legacyHost.PairRole = models.Unpaired
	repairedHost := host

	legacyGuest := guest
	legacyGuest.LinkedFixtureID = nil
	repairedGuest := guest

	tests := []struct {
		name              string
		fixtureID         uint
		fixtureRepository func(t *testing.T) *mocks.FixtureRepository
		result            *models.FixturePair
		expectedErr       error
	}{
		{
			name:      "it returns an error when fixture is not found",
			fixtureID: unpaired.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, unpaired.ID).Return(nil, models.NewResourceNotFoundError(errUnexpected)).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to get fixture: %w", errUnexpected),
		},
		{
			name:      "success - unpaired fixture is returned as host only",
			fixtureID: unpaired.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, unpaired.ID).Return(&unpaired, nil).Once()
				m.On("FindByLinkedFixtureID", ctx, unpaired.ID).Return(nil, models.NewResourceNotFoundError(errUnexpected)).Once()
				m.On("GetForUpdate", ctx, unpaired.ID).Return(&unpaired, nil).Once()
				return m
			},
			result: &models.FixturePair{Host: unpaired},
		},
		{
			name:      "it returns an error when reverse lookup fails",
			fixtureID: unpaired.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, unpaired.ID).Return(&unpaired, nil).Once()
				m.On("FindByLinkedFixtureID", ctx, unpaired.ID).Return(nil, errUnexpected).Once()
				return m
			},
			expectedErr: errUnexpected,
		},
		{
			name:      "success - host addressed directly locks host then guest",
			fixtureID: host.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, host.ID).Return(&host, nil).Once()
				first := m.On("GetForUpdate", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, guest.ID).Return(&guest, nil).Once().NotBefore(first)
				return m
			},
			result: &models.FixturePair{Host: host, Guest: &guest},
		},
		{
			name:      "success - guest addressed directly still locks host first",
			fixtureID: guest.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, guest.ID).Return(&guest, nil).Once()
				first := m.On("GetForUpdate", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, guest.ID).Return(&guest, nil).Once().NotBefore(first)
				return m
			},
			result: &models.FixturePair{Host: host, Guest: &guest},
		},
		{
			name:      "success - host missing its forward link is repaired from the guest",
			fixtureID: legacyHost.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, legacyHost.ID).Return(&legacyHost, nil).Once()
				m.On("FindByLinkedFixtureID", ctx, legacyHost.ID).Return(&guest, nil).Once()
				m.On("GetForUpdate", ctx, legacyHost.ID).Return(&legacyHost, nil).Once()
				m.On("GetForUpdate", ctx, guest.ID).Return(&guest, nil).Once()
				m.On("Update", ctx, legacyHost.ID, mock.MatchedBy(func(u models.FixtureUpdate) bool {
					return u.LinkedFixtureID != nil && *u.LinkedFixtureID == guest.ID &&
						u.PairRole != nil && *u.PairRole == models.HostRole
				})).Return(&repairedHost, nil).Once()
				return m
			},
			result: &models.FixturePair{Host: repairedHost, Guest: &guest},
		},
		{
			name:      "success - guest missing its back-link is paired with the host that links to it",
			fixtureID: legacyGuest.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, legacyGuest.ID).Return(&legacyGuest, nil).Once()
				m.On("FindByLinkedFixtureID", ctx, legacyGuest.ID).Return(&host, nil).Once()
				first := m.On("GetForUpdate", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, legacyGuest.ID).Return(&legacyGuest, nil).Once().NotBefore(first)
				m.On("Update", ctx, legacyGuest.ID, mock.MatchedBy(func(u models.FixtureUpdate) bool {
					return u.LinkedFixtureID != nil && *u.LinkedFixtureID == host.ID &&
						u.PairRole != nil && *u.PairRole == models.GuestRole &&
						u.OpponentTeamID != nil && *u.OpponentTeamID == host.TeamID
				})).Return(&repairedGuest, nil).Once()
				return m
			},
			result: &models.FixturePair{Host: host, Guest: &repairedGuest},
		},
		{
			name:      "it returns an error when guest back-link repair fails",
			fixtureID: legacyGuest.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, legacyGuest.ID).Return(&legacyGuest, nil).Once()
				m.On("FindByLinkedFixtureID", ctx, legacyGuest.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, legacyGuest.ID).Return(&legacyGuest, nil).Once()
				m.On("Update", ctx, legacyGuest.ID, mock.Anything).Return(nil, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to repair link of fixture %d: %w", legacyGuest.ID, errUnexpected),
		},
		{
			name:      "it returns an error when guest lock fails",
			fixtureID: host.ID,
			fixtureRepository: func(t *testing.T) *mocks.FixtureRepository {
				t.Helper()
				m := mocks.NewFixtureRepository(t)
				m.On("Get", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, host.ID).Return(&host, nil).Once()
				m.On("GetForUpdate", ctx, guest.ID).Return(nil, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to lock guest fixture %d: %w", guest.ID, errUnexpected),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := loggerinternal.SetupLogger()
			resolver := pairing.NewResolver(tt.fixtureRepository(t), logger)

			actual, err := resolver.LockPair(ctx, tt.fixtureID)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
