package memory

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

type RosterRepository struct {
	store *Store
}

func (r *RosterRepository) ListAttendingUserIDs(ctx context.Context, fixtureID uint) ([]uint, error) {
	userIDs := []uint{}

	_ = r.store.access(ctx, func(data *state) error {
		for userID := range data.attendees[fixtureID] {
			userIDs = append(userIDs, userID)
		}

		return nil
	})

	slices.Sort(userIDs)

	return userIDs, nil
}

func (r *RosterRepository) ListTeamAdminIDs(ctx context.Context, teamID uint) ([]uint, error) {
	userIDs := []uint{}

	_ = r.store.access(ctx, func(data *state) error {
		for userID, isAdmin := range data.members[teamID] {
			if isAdmin {
				userIDs = append(userIDs, userID)
			}
		}

		return nil
	})

	slices.Sort(userIDs)

	return userIDs, nil
}

func (r *RosterRepository) IsTeamAdmin(ctx context.Context, userID, teamID uint) (bool, error) {
	var isAdmin bool

	_ = r.store.access(ctx, func(data *state) error {
		isAdmin = data.members[teamID][userID]
		return nil
	})

	return isAdmin, nil
}

func (r *RosterRepository) IsTeamMember(ctx context.Context, userID, teamID uint) (bool, error) {
	var isMember bool

	_ = r.store.access(ctx, func(data *state) error {
		_, isMember = data.members[teamID][userID]
		return nil
	})

	return isMember, nil
}

func (r *RosterRepository) AddTeamMember(ctx context.Context, teamID, userID uint, isAdmin bool) {
	_ = r.store.access(ctx, func(data *state) error {
		if data.members[teamID] == nil {
			data.members[teamID] = map[uint]bool{}
		}

		data.members[teamID][userID] = isAdmin

		return nil
	})
}

func (r *RosterRepository) AddAttendee(ctx context.Context, fixtureID, userID uint) {
	_ = r.store.access(ctx, func(data *state) error {
		if data.attendees[fixtureID] == nil {
			data.attendees[fixtureID] = map[uint]struct{}{}
		}

		data.attendees[fixtureID][userID] = struct{}{}

		return nil
	})
}

type rosterFile struct {
	Teams []struct {
		ID      uint   `yaml:"id"`
		Admins  []uint `yaml:"admins"`
		Members []uint `yaml:"members"`
	} `yaml:"teams"`
	Attendances []struct {
		FixtureID uint   `yaml:"fixture_id"`
		UserIDs   []uint `yaml:"user_ids"`
	} `yaml:"attendances"`
}

// SeedRoster loads team members and attendances from a YAML file. An empty path seeds nothing.
func (r *RosterRepository) SeedRoster(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse roster file: %w", err)
	}

	for _, team := range file.Teams {
		for _, userID := range team.Members {
			r.AddTeamMember(ctx, team.ID, userID, false)
		}

		for _, userID := range team.Admins {
			r.AddTeamMember(ctx, team.ID, userID, true)
		}
	}

	for _, attendance := range file.Attendances {
		for _, userID := range attendance.UserIDs {
			r.AddAttendee(ctx, attendance.FixtureID, userID)
		}
	}

	return nil
}
