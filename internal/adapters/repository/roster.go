package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	attendingStatus = "ATTENDING"
	adminRole       = "ADMIN"
)

// RosterRepository reads team membership and attendance. Those tables belong to the CRUD layer and are read-only
// here.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListAttendingUserIDs(ctx context.Context, fixtureID uint) ([]uint, error) {
	userIDs := []uint{}

	err := r.db.SelectContext(ctx, &userIDs,
		`SELECT user_id FROM fixture_attendances WHERE fixture_id = $1 AND status = $2 ORDER BY user_id`,
		fixtureID, attendingStatus,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attending users of fixture %d: %w", fixtureID, err)
	}

	return userIDs, nil
}

func (r *RosterRepository) ListTeamAdminIDs(ctx context.Context, teamID uint) ([]uint, error) {
	userIDs := []uint{}

	err := r.db.SelectContext(ctx, &userIDs,
		`SELECT user_id FROM team_members WHERE team_id = $1 AND role = $2 ORDER BY user_id`,
		teamID, adminRole,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators of team %d: %w", teamID, err)
	}

	return userIDs, nil
}

func (r *RosterRepository) IsTeamAdmin(ctx context.Context, userID, teamID uint) (bool, error) {
	var isAdmin bool

	err := r.db.GetContext(ctx, &isAdmin,
		`SELECT EXISTS (SELECT 1 FROM team_members WHERE user_id = $1 AND team_id = $2 AND role = $3)`,
		userID, teamID, adminRole,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check administrator role of user %d: %w", userID, err)
	}

	return isAdmin, nil
}

func (r *RosterRepository) IsTeamMember(ctx context.Context, userID, teamID uint) (bool, error) {
	var isMember bool

	err := r.db.GetContext(ctx, &isMember,
		`SELECT EXISTS (SELECT 1 FROM team_members WHERE user_id = $1 AND team_id = $2)`,
		userID, teamID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check membership of user %d: %w", userID, err)
	}

	return isMember, nil
}
