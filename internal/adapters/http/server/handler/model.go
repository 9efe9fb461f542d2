package handler

import (
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/phaseclock"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
)

type IDParam struct {
	ID uint `uri:"id" binding:"required"`
}

type TokenParam struct {
	Token string `uri:"token" binding:"required"`
}

type SendChallengeRequest struct {
	OpponentTeamID uint `binding:"required" json:"opponent_team_id"`
}

type RejectChallengeRequest struct {
	Reason *string `json:"reason"`
}

type ChangeStatusRequest struct {
	Status models.MatchStatus `binding:"required,oneof=DRAFT CHALLENGE_SENT PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED" json:"status"`
}

type RecordGoalRequest struct {
	Quarter     int             `binding:"required,min=1" json:"quarter"`
	Minute      *int            `binding:"omitempty,min=0" json:"minute"`
	ScoringTeam models.TeamSide `binding:"required,oneof=TEAM_A TEAM_B" json:"scoring_team"`
	ScorerID    *uint           `json:"scorer_id"`
	AssistID    *uint           `json:"assist_id"`
	IsOwnGoal   bool            `json:"is_own_goal"`
}

type RecordCardRequest struct {
	Quarter  int             `binding:"required,min=1" json:"quarter"`
	Minute   *int            `binding:"omitempty,min=0" json:"minute"`
	TeamSide models.TeamSide `binding:"required,oneof=TEAM_A TEAM_B" json:"team_side"`
	PlayerID *uint           `json:"player_id"`
	CardType models.CardType `binding:"required,oneof=YELLOW RED" json:"card_type"`
}

type RecordSubstitutionRequest struct {
	Quarter     int             `binding:"required,min=1" json:"quarter"`
	Minute      *int            `binding:"omitempty,min=0" json:"minute"`
	TeamSide    models.TeamSide `binding:"required,oneof=TEAM_A TEAM_B" json:"team_side"`
	PlayerOutID *uint           `json:"player_out_id"`
	PlayerInID  *uint           `json:"player_in_id"`
}

type ConfigureTimerRequest struct {
	FormatName string       `json:"format_name"`
	Format     *MatchFormat `json:"format"`
}

type MatchFormat struct {
	QuarterCount    int `json:"quarter_count"`
	QuarterMinutes  int `json:"quarter_minutes"`
	BreakMinutes    int `json:"break_minutes"`
	HalftimeMinutes int `json:"halftime_minutes"`
}

type AssignRefereeRequest struct {
	RefereeUserID *uint  `json:"referee_user_id"`
	RefereeName   string `json:"referee_name"`
}

func (r *SendChallengeRequest) ToDomain(fixtureID uint) models.SendChallengeRequest {
	return models.SendChallengeRequest{
		FixtureID:      fixtureID,
		OpponentTeamID: r.OpponentTeamID,
	}
}

func (r *RejectChallengeRequest) ToDomain(token string) models.RejectChallengeRequest {
	return models.RejectChallengeRequest{
		Token:  token,
		Reason: r.Reason,
	}
}

func (r *RecordGoalRequest) ToDomain() models.RecordGoalRequest {
	return models.RecordGoalRequest{
		Quarter:     r.Quarter,
		Minute:      r.Minute,
		ScoringTeam: r.ScoringTeam,
		ScorerID:    r.ScorerID,
		AssistID:    r.AssistID,
		IsOwnGoal:   r.IsOwnGoal,
	}
}

func (r *RecordCardRequest) ToDomain() models.RecordCardRequest {
	return models.RecordCardRequest{
		Quarter:  r.Quarter,
		Minute:   r.Minute,
		TeamSide: r.TeamSide,
		PlayerID: r.PlayerID,
		CardType: r.CardType,
	}
}

func (r *RecordSubstitutionRequest) ToDomain() models.RecordSubstitutionRequest {
	return models.RecordSubstitutionRequest{
		Quarter:     r.Quarter,
		Minute:      r.Minute,
		TeamSide:    r.TeamSide,
		PlayerOutID: r.PlayerOutID,
		PlayerInID:  r.PlayerInID,
	}
}

func (r *ConfigureTimerRequest) ToDomain(fixtureID uint) models.ConfigureTimerRequest {
	request := models.ConfigureTimerRequest{
		FixtureID:  fixtureID,
		FormatName: r.FormatName,
	}

	if r.Format != nil {
		request.Format = &models.MatchFormat{
			QuarterCount:    r.Format.QuarterCount,
			QuarterMinutes:  r.Format.QuarterMinutes,
			BreakMinutes:    r.Format.BreakMinutes,
			HalftimeMinutes: r.Format.HalftimeMinutes,
		}
	}

	return request
}

func (r *AssignRefereeRequest) ToDomain(fixtureID uint) models.AssignRefereeRequest {
	return models.AssignRefereeRequest{
		FixtureID:     fixtureID,
		RefereeUserID: r.RefereeUserID,
		RefereeName:   r.RefereeName,
	}
}

type FixtureResponse struct {
	ID                    uint               `json:"id"`
	TeamID                uint               `json:"team_id"`
	OpponentTeamID        *uint              `json:"opponent_team_id"`
	Title                 string             `json:"title"`
	StartsAt              time.Time          `json:"starts_at"`
	MatchStatus           models.MatchStatus `json:"match_status"`
	PairRole              *models.PairRole   `json:"pair_role"`
	LinkedFixtureID       *uint              `json:"linked_fixture_id"`
	TeamAScore            int                `json:"team_a_score"`
	TeamBScore            int                `json:"team_b_score"`
	RejectionReason       *string            `json:"rejection_reason,omitempty"`
	ChallengeToken        *string            `json:"challenge_token,omitempty"`
	ChallengeExpiresAt    *time.Time         `json:"challenge_token_expires_at,omitempty"`
	ScoringToken          *string            `json:"scoring_token,omitempty"`
	ScoringTokenExpiresAt *time.Time         `json:"scoring_token_expires_at,omitempty"`
}

type FixturePairResponse struct {
	Host  FixtureResponse  `json:"host"`
	Guest *FixtureResponse `json:"guest"`
}

type ScoreResponse struct {
	TeamAScore int `json:"team_a_score"`
	TeamBScore int `json:"team_b_score"`
}

type GoalResponse struct {
	ID          uint            `json:"id"`
	FixtureID   uint            `json:"fixture_id"`
	Quarter     int             `json:"quarter"`
	Minute      *int            `json:"minute"`
	ScoringTeam models.TeamSide `json:"scoring_team"`
	ScorerID    *uint           `json:"scorer_id"`
	AssistID    *uint           `json:"assist_id"`
	IsOwnGoal   bool            `json:"is_own_goal"`
	RecordedBy  uint            `json:"recorded_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RecordedGoalResponse struct {
	Goal  GoalResponse  `json:"goal"`
	Score ScoreResponse `json:"score"`
}

type CardResponse struct {
	ID         uint            `json:"id"`
	FixtureID  uint            `json:"fixture_id"`
	Quarter    int             `json:"quarter"`
	Minute     *int            `json:"minute"`
	TeamSide   models.TeamSide `json:"team_side"`
	PlayerID   *uint           `json:"player_id"`
	CardType   models.CardType `json:"card_type"`
	RecordedBy uint            `json:"recorded_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

type SubstitutionResponse struct {
	ID          uint            `json:"id"`
	FixtureID   uint            `json:"fixture_id"`
	Quarter     int             `json:"quarter"`
	Minute      *int            `json:"minute"`
	TeamSide    models.TeamSide `json:"team_side"`
	PlayerOutID *uint           `json:"player_out_id"`
	PlayerInID  *uint           `json:"player_in_id"`
	RecordedBy  uint            `json:"recorded_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type MatchEventsResponse struct {
	Goals         []GoalResponse         `json:"goals"`
	Cards         []CardResponse         `json:"cards"`
	Substitutions []SubstitutionResponse `json:"substitutions"`
}

type PhaseResponse struct {
	Type            phaseclock.PhaseType `json:"type"`
	QuarterNumber   *int                 `json:"quarter_number,omitempty"`
	DurationSeconds int                  `json:"duration_seconds"`
	Label           string               `json:"label"`
}

type MatchClockResponse struct {
	FixtureID        uint            `json:"fixture_id"`
	Format           MatchFormat     `json:"format"`
	Phases           []PhaseResponse `json:"phases"`
	CurrentPhase     int             `json:"current_phase"`
	Phase            *PhaseResponse  `json:"phase"`
	ElapsedSeconds   int             `json:"elapsed_seconds"`
	RemainingSeconds *int            `json:"remaining_seconds"`
	Running          bool            `json:"running"`
	Finished         bool            `json:"finished"`
}

type RefereeAssignmentResponse struct {
	ID                     uint                 `json:"id"`
	FixtureID              uint                 `json:"fixture_id"`
	RefereeUserID          *uint                `json:"referee_user_id"`
	RefereeName            string               `json:"referee_name"`
	ApprovedByHostTeam     bool                 `json:"approved_by_host_team"`
	ApprovedByOpponentTeam bool                 `json:"approved_by_opponent_team"`
	Status                 models.RefereeStatus `json:"status"`
	CreatedAt              time.Time            `json:"created_at"`
}

type RefereeApprovalResponse struct {
	Assignment   RefereeAssignmentResponse `json:"assignment"`
	Status       models.RefereeStatus      `json:"status"`
	BothApproved bool                      `json:"both_approved"`
}

func fixtureFromDomain(f models.Fixture) FixtureResponse {
	response := FixtureResponse{
		ID:                    f.ID,
		TeamID:                f.TeamID,
		OpponentTeamID:        f.OpponentTeamID,
		Title:                 f.Title,
		StartsAt:              f.StartsAt,
		MatchStatus:           f.MatchStatus,
		LinkedFixtureID:       f.LinkedFixtureID,
		TeamAScore:            f.TeamAScore,
		TeamBScore:            f.TeamBScore,
		RejectionReason:       f.RejectionReason,
		ChallengeToken:        f.ChallengeToken,
		ChallengeExpiresAt:    f.ChallengeTokenExpiresAt,
		ScoringToken:          f.ScoringToken,
		ScoringTokenExpiresAt: f.ScoringTokenExpiresAt,
	}

	if f.PairRole != models.Unpaired {
		role := f.PairRole
		response.PairRole = &role
	}

	return response
}

func pairFromDomain(p models.FixturePair) FixturePairResponse {
	response := FixturePairResponse{Host: fixtureFromDomain(p.Host)}
	if p.Guest != nil {
		guest := fixtureFromDomain(*p.Guest)
		response.Guest = &guest
	}

	return response
}

func scoreFromDomain(s models.Score) ScoreResponse {
	return ScoreResponse{TeamAScore: s.TeamAScore, TeamBScore: s.TeamBScore}
}

func goalFromDomain(g models.GoalEvent) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		FixtureID:   g.FixtureID,
		Quarter:     g.Quarter,
		Minute:      g.Minute,
		ScoringTeam: g.ScoringTeam,
		ScorerID:    g.ScorerID,
		AssistID:    g.AssistID,
		IsOwnGoal:   g.IsOwnGoal,
		RecordedBy:  g.RecordedBy,
		CreatedAt:   g.CreatedAt,
	}
}

func cardFromDomain(c models.CardEvent) CardResponse {
	return CardResponse{
		ID:         c.ID,
		FixtureID:  c.FixtureID,
		Quarter:    c.Quarter,
		Minute:     c.Minute,
		TeamSide:   c.TeamSide,
		PlayerID:   c.PlayerID,
		CardType:   c.CardType,
		RecordedBy: c.RecordedBy,
		CreatedAt:  c.CreatedAt,
	}
}

func substitutionFromDomain(s models.SubstitutionEvent) SubstitutionResponse {
	return SubstitutionResponse{
		ID:          s.ID,
		FixtureID:   s.FixtureID,
		Quarter:     s.Quarter,
		Minute:      s.Minute,
		TeamSide:    s.TeamSide,
		PlayerOutID: s.PlayerOutID,
		PlayerInID:  s.PlayerInID,
		RecordedBy:  s.RecordedBy,
		CreatedAt:   s.CreatedAt,
	}
}

func eventsFromDomain(e models.MatchEvents) MatchEventsResponse {
	response := MatchEventsResponse{
		Goals:         make([]GoalResponse, 0, len(e.Goals)),
		Cards:         make([]CardResponse, 0, len(e.Cards)),
		Substitutions: make([]SubstitutionResponse, 0, len(e.Substitutions)),
	}

	for _, goal := range e.Goals {
		response.Goals = append(response.Goals, goalFromDomain(goal))
	}

	for _, card := range e.Cards {
		response.Cards = append(response.Cards, cardFromDomain(card))
	}

	for _, substitution := range e.Substitutions {
		response.Substitutions = append(response.Substitutions, substitutionFromDomain(substitution))
	}

	return response
}

func phaseFromDomain(p phaseclock.Phase) PhaseResponse {
	return PhaseResponse{
		Type:            p.Type,
		QuarterNumber:   p.QuarterNumber,
		DurationSeconds: p.DurationSeconds,
		Label:           p.Label,
	}
}

func clockFromDomain(c timer.MatchClock) MatchClockResponse {
	response := MatchClockResponse{
		FixtureID: c.FixtureID,
		Format: MatchFormat{
			QuarterCount:    c.Format.QuarterCount,
			QuarterMinutes:  c.Format.QuarterMinutes,
			BreakMinutes:    c.Format.BreakMinutes,
			HalftimeMinutes: c.Format.HalftimeMinutes,
		},
		Phases:           make([]PhaseResponse, 0, len(c.Phases)),
		CurrentPhase:     c.CurrentPhase,
		ElapsedSeconds:   c.ElapsedSeconds,
		RemainingSeconds: c.RemainingSeconds,
		Running:          c.Running,
		Finished:         c.Finished,
	}

	for _, phase := range c.Phases {
		response.Phases = append(response.Phases, phaseFromDomain(phase))
	}

	if c.Phase != nil {
		phase := phaseFromDomain(*c.Phase)
		response.Phase = &phase
	}

	return response
}

func refereeFromDomain(a models.RefereeAssignment) RefereeAssignmentResponse {
	return RefereeAssignmentResponse{
		ID:                     a.ID,
		FixtureID:              a.FixtureID,
		RefereeUserID:          a.RefereeUserID,
		RefereeName:            a.RefereeName,
		ApprovedByHostTeam:     a.ApprovedByHostTeam,
		ApprovedByOpponentTeam: a.ApprovedByOpponentTeam,
		Status:                 a.Status,
		CreatedAt:              a.CreatedAt,
	}
}

func approvalFromDomain(a models.RefereeApproval) RefereeApprovalResponse {
	return RefereeApprovalResponse{
		Assignment:   refereeFromDomain(a.Assignment),
		Status:       a.Status,
		BothApproved: a.BothApproved,
	}
}
