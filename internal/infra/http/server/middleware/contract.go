package middleware

import "context"

type RosterChecker interface {
	IsTeamMember(ctx context.Context, userID uint, teamID uint) (bool, error)
	IsTeamAdmin(ctx context.Context, userID uint, teamID uint) (bool, error)
}
