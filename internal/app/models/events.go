package models

import "time"

const (
	EventChallengeSent     = "fixture.challenge_sent"
	EventChallengeAccepted = "fixture.challenge_accepted"
	EventChallengeRejected = "fixture.challenge_rejected"
	EventChallengeExpired  = "fixture.challenge_expired"
	EventStatusChanged     = "fixture.status_changed"
	EventScoreChanged      = "fixture.score_changed"
	EventTimerChanged      = "fixture.timer_changed"
	EventGoalRecorded      = "goal.recorded"
	EventGoalDeleted       = "goal.deleted"
	EventCardRecorded      = "card.recorded"
	EventCardDeleted       = "card.deleted"
	EventSubstitutionMade  = "substitution.recorded"
	EventSubstitutionGone  = "substitution.deleted"
	EventRefereeAssigned   = "referee.assigned"
	EventRefereeApproved   = "referee.approved"
)

// DomainEvent is published after the transaction that produced it has committed.
type DomainEvent struct {
	Type      string
	FixtureID uint
	Payload   any
	CreatedAt time.Time
}

type ChallengePayload struct {
	HostFixtureID  uint    `json:"host_fixture_id"`
	GuestFixtureID *uint   `json:"guest_fixture_id,omitempty"`
	HostTeamID     uint    `json:"host_team_id"`
	GuestTeamID    uint    `json:"guest_team_id"`
	Reason         *string `json:"reason,omitempty"`
}

type StatusChangedPayload struct {
	FixtureIDs []uint      `json:"fixture_ids"`
	From       MatchStatus `json:"from"`
	To         MatchStatus `json:"to"`
	ChangedBy  uint        `json:"changed_by"`
}

type ScoreChangedPayload struct {
	FixtureIDs []uint `json:"fixture_ids"`
	TeamAScore int    `json:"team_a_score"`
	TeamBScore int    `json:"team_b_score"`
}

type TimerChangedPayload struct {
	FixtureIDs     []uint     `json:"fixture_ids"`
	CurrentPhase   int        `json:"current_phase"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	TimerStartedAt *time.Time `json:"timer_started_at,omitempty"`
}

type MatchEventPayload struct {
	EventID    uint     `json:"event_id"`
	Quarter    int      `json:"quarter"`
	Minute     *int     `json:"minute,omitempty"`
	TeamSide   TeamSide `json:"team_side"`
	RecordedBy uint     `json:"recorded_by"`
}

type RefereePayload struct {
	AssignmentID uint          `json:"assignment_id"`
	Status       RefereeStatus `json:"status"`
}
