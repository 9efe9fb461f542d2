package repository

import (
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type Fixture struct {
	ID              uint      `gorm:"column:id;primaryKey"`
	TeamID          uint      `gorm:"column:team_id"`
	OpponentTeamID  *uint     `gorm:"column:opponent_team_id"`
	Title           string    `gorm:"column:title"`
	StartsAt        time.Time `gorm:"column:starts_at"`
	MatchStatus     string    `gorm:"column:match_status;default:DRAFT"`
	PairRole        *string   `gorm:"column:pair_role"`
	LinkedFixtureID *uint     `gorm:"column:linked_fixture_id"`
	TeamAScore      int       `gorm:"column:team_a_score"`
	TeamBScore      int       `gorm:"column:team_b_score"`
	RejectionReason *string   `gorm:"column:rejection_reason"`

	ChallengeToken          *string    `gorm:"column:challenge_token;unique"`
	ChallengeTokenExpiresAt *time.Time `gorm:"column:challenge_token_expires_at"`
	ScoringToken            *string    `gorm:"column:scoring_token;unique"`
	ScoringTokenExpiresAt   *time.Time `gorm:"column:scoring_token_expires_at"`

	QuarterCount    int        `gorm:"column:quarter_count"`
	QuarterMinutes  int        `gorm:"column:quarter_minutes"`
	BreakMinutes    int        `gorm:"column:break_minutes"`
	HalftimeMinutes int        `gorm:"column:halftime_minutes"`
	CurrentPhase    int        `gorm:"column:current_phase"`
	ElapsedSeconds  int        `gorm:"column:elapsed_seconds"`
	TimerStartedAt  *time.Time `gorm:"column:timer_started_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

type GoalEvent struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	FixtureID   uint      `gorm:"column:fixture_id"`
	Quarter     int       `gorm:"column:quarter"`
	Minute      *int      `gorm:"column:minute"`
	ScoringTeam string    `gorm:"column:scoring_team"`
	ScorerID    *uint     `gorm:"column:scorer_id"`
	AssistID    *uint     `gorm:"column:assist_id"`
	IsOwnGoal   bool      `gorm:"column:is_own_goal"`
	RecordedBy  uint      `gorm:"column:recorded_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`

	Fixture *Fixture `gorm:"foreignKey:FixtureID"`
}

type CardEvent struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	FixtureID  uint      `gorm:"column:fixture_id"`
	Quarter    int       `gorm:"column:quarter"`
	Minute     *int      `gorm:"column:minute"`
	TeamSide   string    `gorm:"column:team_side"`
	PlayerID   *uint     `gorm:"column:player_id"`
	CardType   string    `gorm:"column:card_type"`
	RecordedBy uint      `gorm:"column:recorded_by"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Fixture *Fixture `gorm:"foreignKey:FixtureID"`
}

type SubstitutionEvent struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	FixtureID   uint      `gorm:"column:fixture_id"`
	Quarter     int       `gorm:"column:quarter"`
	Minute      *int      `gorm:"column:minute"`
	TeamSide    string    `gorm:"column:team_side"`
	PlayerOutID *uint     `gorm:"column:player_out_id"`
	PlayerInID  *uint     `gorm:"column:player_in_id"`
	RecordedBy  uint      `gorm:"column:recorded_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`

	Fixture *Fixture `gorm:"foreignKey:FixtureID"`
}

type RefereeAssignment struct {
	ID                     uint      `gorm:"column:id;primaryKey"`
	FixtureID              uint      `gorm:"column:fixture_id"`
	RefereeUserID          *uint     `gorm:"column:referee_user_id"`
	RefereeName            string    `gorm:"column:referee_name"`
	ApprovedByHostTeam     bool      `gorm:"column:approved_by_host_team"`
	ApprovedByOpponentTeam bool      `gorm:"column:approved_by_opponent_team"`
	Status                 string    `gorm:"column:status;default:PENDING_APPROVAL"`
	CreatedAt              time.Time `gorm:"column:created_at"`

	Fixture *Fixture `gorm:"foreignKey:FixtureID"`
}

func fromDomainFixture(f models.Fixture) Fixture {
	var pairRole *string
	if f.PairRole != models.Unpaired {
		role := string(f.PairRole)
		pairRole = &role
	}

	return Fixture{
		ID:                      f.ID,
		TeamID:                  f.TeamID,
		OpponentTeamID:          f.OpponentTeamID,
		Title:                   f.Title,
		StartsAt:                f.StartsAt,
		MatchStatus:             string(f.MatchStatus),
		PairRole:                pairRole,
		LinkedFixtureID:         f.LinkedFixtureID,
		TeamAScore:              f.TeamAScore,
		TeamBScore:              f.TeamBScore,
		RejectionReason:         f.RejectionReason,
		ChallengeToken:          f.ChallengeToken,
		ChallengeTokenExpiresAt: f.ChallengeTokenExpiresAt,
		ScoringToken:            f.ScoringToken,
		ScoringTokenExpiresAt:   f.ScoringTokenExpiresAt,
		QuarterCount:            f.Timer.QuarterCount,
		QuarterMinutes:          f.Timer.QuarterMinutes,
		BreakMinutes:            f.Timer.BreakMinutes,
		HalftimeMinutes:         f.Timer.HalftimeMinutes,
		CurrentPhase:            f.Timer.CurrentPhase,
		ElapsedSeconds:          f.Timer.ElapsedSeconds,
		TimerStartedAt:          f.Timer.TimerStartedAt,
	}
}

func toDomainFixture(f Fixture) models.Fixture {
	var pairRole models.PairRole
	if f.PairRole != nil {
		pairRole = models.PairRole(*f.PairRole)
	}

	return models.Fixture{
		ID:                      f.ID,
		TeamID:                  f.TeamID,
		OpponentTeamID:          f.OpponentTeamID,
		Title:                   f.Title,
		StartsAt:                f.StartsAt,
		MatchStatus:             models.MatchStatus(f.MatchStatus),
		PairRole:                pairRole,
		LinkedFixtureID:         f.LinkedFixtureID,
		TeamAScore:              f.TeamAScore,
		TeamBScore:              f.TeamBScore,
		RejectionReason:         f.RejectionReason,
		ChallengeToken:          f.ChallengeToken,
		ChallengeTokenExpiresAt: f.ChallengeTokenExpiresAt,
		ScoringToken:            f.ScoringToken,
		ScoringTokenExpiresAt:   f.ScoringTokenExpiresAt,
		Timer: models.MatchTimer{
			MatchFormat: models.MatchFormat{
				QuarterCount:    f.QuarterCount,
				QuarterMinutes:  f.QuarterMinutes,
				BreakMinutes:    f.BreakMinutes,
				HalftimeMinutes: f.HalftimeMinutes,
			},
			CurrentPhase:   f.CurrentPhase,
			ElapsedSeconds: f.ElapsedSeconds,
			TimerStartedAt: f.TimerStartedAt,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// fixtureColumns maps an update onto column values. Nil pointers are skipped, Clear* flags write NULL.
func fixtureColumns(u models.FixtureUpdate) map[string]any {
	columns := map[string]any{}

	if u.MatchStatus != nil {
		columns["match_status"] = string(*u.MatchStatus)
	}

	if u.PairRole != nil {
		columns["pair_role"] = string(*u.PairRole)
	}

	if u.OpponentTeamID != nil {
		columns["opponent_team_id"] = *u.OpponentTeamID
	}

	if u.LinkedFixtureID != nil {
		columns["linked_fixture_id"] = *u.LinkedFixtureID
	}

	if u.RejectionReason != nil {
		columns["rejection_reason"] = *u.RejectionReason
	}

	if u.ChallengeToken != nil {
		columns["challenge_token"] = *u.ChallengeToken
	}

	if u.ChallengeTokenExpiresAt != nil {
		columns["challenge_token_expires_at"] = *u.ChallengeTokenExpiresAt
	}

	if u.ScoringToken != nil {
		columns["scoring_token"] = *u.ScoringToken
	}

	if u.ScoringTokenExpiresAt != nil {
		columns["scoring_token_expires_at"] = *u.ScoringTokenExpiresAt
	}

	if u.ClearLink {
		columns["linked_fixture_id"] = nil
		columns["pair_role"] = nil
		columns["opponent_team_id"] = nil
	}

	if u.ClearChallengeToken {
		columns["challenge_token"] = nil
		columns["challenge_token_expires_at"] = nil
	}

	if u.ClearScoringToken {
		columns["scoring_token"] = nil
		columns["scoring_token_expires_at"] = nil
	}

	if u.Timer != nil {
		columns["quarter_count"] = u.Timer.QuarterCount
		columns["quarter_minutes"] = u.Timer.QuarterMinutes
		columns["break_minutes"] = u.Timer.BreakMinutes
		columns["halftime_minutes"] = u.Timer.HalftimeMinutes
		columns["current_phase"] = u.Timer.CurrentPhase
		columns["elapsed_seconds"] = u.Timer.ElapsedSeconds
		columns["timer_started_at"] = u.Timer.TimerStartedAt
	}

	return columns
}

func toDomainGoalEvent(g GoalEvent) models.GoalEvent {
	return models.GoalEvent{
		ID:          g.ID,
		FixtureID:   g.FixtureID,
		Quarter:     g.Quarter,
		Minute:      g.Minute,
		ScoringTeam: models.TeamSide(g.ScoringTeam),
		ScorerID:    g.ScorerID,
		AssistID:    g.AssistID,
		IsOwnGoal:   g.IsOwnGoal,
		RecordedBy:  g.RecordedBy,
		CreatedAt:   g.CreatedAt,
	}
}

func toDomainGoalEvents(goals []GoalEvent) []models.GoalEvent {
	mapped := make([]models.GoalEvent, 0, len(goals))

	for _, goal := range goals {
		mapped = append(mapped, toDomainGoalEvent(goal))
	}

	return mapped
}

func toDomainCardEvent(c CardEvent) models.CardEvent {
	return models.CardEvent{
		ID:         c.ID,
		FixtureID:  c.FixtureID,
		Quarter:    c.Quarter,
		Minute:     c.Minute,
		TeamSide:   models.TeamSide(c.TeamSide),
		PlayerID:   c.PlayerID,
		CardType:   models.CardType(c.CardType),
		RecordedBy: c.RecordedBy,
		CreatedAt:  c.CreatedAt,
	}
}

func toDomainCardEvents(cards []CardEvent) []models.CardEvent {
	mapped := make([]models.CardEvent, 0, len(cards))

	for _, card := range cards {
		mapped = append(mapped, toDomainCardEvent(card))
	}

	return mapped
}

func toDomainSubstitutionEvent(s SubstitutionEvent) models.SubstitutionEvent {
	return models.SubstitutionEvent{
		ID:          s.ID,
		FixtureID:   s.FixtureID,
		Quarter:     s.Quarter,
		Minute:      s.Minute,
		TeamSide:    models.TeamSide(s.TeamSide),
		PlayerOutID: s.PlayerOutID,
		PlayerInID:  s.PlayerInID,
		RecordedBy:  s.RecordedBy,
		CreatedAt:   s.CreatedAt,
	}
}

func toDomainSubstitutionEvents(substitutions []SubstitutionEvent) []models.SubstitutionEvent {
	mapped := make([]models.SubstitutionEvent, 0, len(substitutions))

	for _, substitution := range substitutions {
		mapped = append(mapped, toDomainSubstitutionEvent(substitution))
	}

	return mapped
}

func toDomainRefereeAssignment(a RefereeAssignment) models.RefereeAssignment {
	return models.RefereeAssignment{
		ID:                     a.ID,
		FixtureID:              a.FixtureID,
		RefereeUserID:          a.RefereeUserID,
		RefereeName:            a.RefereeName,
		ApprovedByHostTeam:     a.ApprovedByHostTeam,
		ApprovedByOpponentTeam: a.ApprovedByOpponentTeam,
		Status:                 models.RefereeStatus(a.Status),
		CreatedAt:              a.CreatedAt,
	}
}
