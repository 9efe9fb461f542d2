package models

import (
	"time"
)

type MatchStatus string

const (
	Draft         MatchStatus = "DRAFT"
	ChallengeSent MatchStatus = "CHALLENGE_SENT"
	Pending       MatchStatus = "PENDING"
	Confirmed     MatchStatus = "CONFIRMED"
	InProgress    MatchStatus = "IN_PROGRESS"
	Completed     MatchStatus = "COMPLETED"
	Cancelled     MatchStatus = "CANCELLED"
)

// PairRole tells which end of a pairing a fixture is. The host fixture is the canonical record of the pair:
// match events and referee assignments attach to it.
type PairRole string

const (
	Unpaired  PairRole = ""
	HostRole  PairRole = "HOST"
	GuestRole PairRole = "GUEST"
)

type TeamSide string

const (
	TeamA TeamSide = "TEAM_A"
	TeamB TeamSide = "TEAM_B"
)

func (s TeamSide) Valid() bool {
	return s == TeamA || s == TeamB
}

type CardType string

const (
	YellowCard CardType = "YELLOW"
	RedCard    CardType = "RED"
)

func (c CardType) Valid() bool {
	return c == YellowCard || c == RedCard
}

type RefereeStatus string

const (
	PendingApproval  RefereeStatus = "PENDING_APPROVAL"
	RefereeConfirmed RefereeStatus = "CONFIRMED"
)

// Caller is the identity on whose behalf an operation runs. IsAdmin refers to TeamID.
type Caller struct {
	UserID  uint
	TeamID  uint
	IsAdmin bool
}

func (c Caller) IsAdminOf(teamID uint) bool {
	return c.IsAdmin && c.TeamID == teamID
}

type MatchFormat struct {
	QuarterCount    int `yaml:"quarter_count"`
	QuarterMinutes  int `yaml:"quarter_minutes"`
	BreakMinutes    int `yaml:"break_minutes"`
	HalftimeMinutes int `yaml:"halftime_minutes"`
}

type MatchTimer struct {
	MatchFormat

	CurrentPhase   int
	ElapsedSeconds int
	TimerStartedAt *time.Time
}

func (t MatchTimer) Running() bool {
	return t.TimerStartedAt != nil
}

type Fixture struct {
	ID              uint
	TeamID          uint
	OpponentTeamID  *uint
	Title           string
	StartsAt        time.Time
	MatchStatus     MatchStatus
	PairRole        PairRole
	LinkedFixtureID *uint
	TeamAScore      int
	TeamBScore      int
	RejectionReason *string

	ChallengeToken          *string
	ChallengeTokenExpiresAt *time.Time
	ScoringToken            *string
	ScoringTokenExpiresAt   *time.Time

	Timer MatchTimer

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanonicalID is the id of the fixture that holds the event log of the pair.
func (f Fixture) CanonicalID() uint {
	if f.PairRole == GuestRole && f.LinkedFixtureID != nil {
		return *f.LinkedFixtureID
	}

	return f.ID
}

func (f Fixture) IsTerminal() bool {
	return f.MatchStatus == Completed || f.MatchStatus == Cancelled
}

// FixtureUpdate carries the fields a status transition writes. Nil pointers are left untouched; the Clear* flags
// null the corresponding columns.
type FixtureUpdate struct {
	MatchStatus     *MatchStatus
	PairRole        *PairRole
	OpponentTeamID  *uint
	LinkedFixtureID *uint
	RejectionReason *string

	ChallengeToken          *string
	ChallengeTokenExpiresAt *time.Time
	ScoringToken            *string
	ScoringTokenExpiresAt   *time.Time

	// ClearLink unwinds the pairing: linked fixture, pair role and opponent team.
	ClearLink           bool
	ClearChallengeToken bool
	ClearScoringToken   bool

	Timer *MatchTimer
}

// FixturePair holds both ends of a pairing. An unpaired fixture is returned as Host with a nil Guest.
type FixturePair struct {
	Host  Fixture
	Guest *Fixture
}

func (p FixturePair) IDs() []uint {
	if p.Guest == nil {
		return []uint{p.Host.ID}
	}

	return []uint{p.Host.ID, p.Guest.ID}
}

func (p FixturePair) TeamIDs() []uint {
	if p.Guest == nil {
		return []uint{p.Host.TeamID}
	}

	return []uint{p.Host.TeamID, p.Guest.TeamID}
}

type Score struct {
	TeamAScore int
	TeamBScore int
}

type GoalEvent struct {
	ID          uint
	FixtureID   uint
	Quarter     int
	Minute      *int
	ScoringTeam TeamSide
	ScorerID    *uint
	AssistID    *uint
	IsOwnGoal   bool
	RecordedBy  uint
	CreatedAt   time.Time
}

type CardEvent struct {
	ID         uint
	FixtureID  uint
	Quarter    int
	Minute     *int
	TeamSide   TeamSide
	PlayerID   *uint
	CardType   CardType
	RecordedBy uint
	CreatedAt  time.Time
}

type SubstitutionEvent struct {
	ID          uint
	FixtureID   uint
	Quarter     int
	Minute      *int
	TeamSide    TeamSide
	PlayerOutID *uint
	PlayerInID  *uint
	RecordedBy  uint
	CreatedAt   time.Time
}

type RecordedGoal struct {
	Goal  GoalEvent
	Score Score
}

type MatchEvents struct {
	Goals         []GoalEvent
	Cards         []CardEvent
	Substitutions []SubstitutionEvent
}

type RefereeAssignment struct {
	ID                     uint
	FixtureID              uint
	RefereeUserID          *uint
	RefereeName            string
	ApprovedByHostTeam     bool
	ApprovedByOpponentTeam bool
	Status                 RefereeStatus
	CreatedAt              time.Time
}

func (a RefereeAssignment) BothApproved() bool {
	return a.ApprovedByHostTeam && a.ApprovedByOpponentTeam
}

// Capability is the result of a successful cross-team authorization. It is derived per request.
type Capability struct {
	FixtureID       uint
	LinkedFixtureID *uint
	CallerRole      PairRole
	Fixture         Fixture
}

// MatchAccess addresses a live fixture either through its scoring token or directly by id.
type MatchAccess struct {
	Token     string
	FixtureID uint
}

type SendChallengeRequest struct {
	FixtureID      uint
	OpponentTeamID uint
}

type RejectChallengeRequest struct {
	Token  string
	Reason *string
}

type RecordGoalRequest struct {
	Quarter     int
	Minute      *int
	ScoringTeam TeamSide
	ScorerID    *uint
	AssistID    *uint
	IsOwnGoal   bool
}

type RecordCardRequest struct {
	Quarter  int
	Minute   *int
	TeamSide TeamSide
	PlayerID *uint
	CardType CardType
}

type RecordSubstitutionRequest struct {
	Quarter     int
	Minute      *int
	TeamSide    TeamSide
	PlayerOutID *uint
	PlayerInID  *uint
}

type AssignRefereeRequest struct {
	FixtureID     uint
	RefereeUserID *uint
	RefereeName   string
}

type ConfigureTimerRequest struct {
	FixtureID  uint
	FormatName string
	Format     *MatchFormat
}

type RefereeApproval struct {
	Assignment   RefereeAssignment
	Status       RefereeStatus
	BothApproved bool
}

type Notification struct {
	UserIDs []uint `json:"user_ids"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	URL     string `json:"url"`
}
