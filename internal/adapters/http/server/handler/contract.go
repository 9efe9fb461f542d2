package handler

import (
	"context"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
)

type ChallengeService interface {
	Get(ctx context.Context, fixtureID uint) (*models.Fixture, error)
	Send(ctx context.Context, caller models.Caller, request models.SendChallengeRequest) (*models.FixturePair, error)
	Accept(ctx context.Context, caller models.Caller, token string) (*models.FixturePair, error)
	Reject(ctx context.Context, caller models.Caller, request models.RejectChallengeRequest) (*models.Fixture, error)
	ChangeStatus(ctx context.Context, caller models.Caller, fixtureID uint, target models.MatchStatus) (*models.FixturePair, error)
}

type MatchEventService interface {
	RecordGoal(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordGoalRequest) (*models.RecordedGoal, error)
	DeleteGoal(ctx context.Context, caller models.Caller, goalID uint) (*models.Score, error)
	RecordCard(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordCardRequest) (*models.CardEvent, error)
	DeleteCard(ctx context.Context, caller models.Caller, cardID uint) error
	RecordSubstitution(ctx context.Context, caller models.Caller, access models.MatchAccess, request models.RecordSubstitutionRequest) (*models.SubstitutionEvent, error)
	DeleteSubstitution(ctx context.Context, caller models.Caller, substitutionID uint) error
	ListEvents(ctx context.Context, fixtureID uint) (*models.MatchEvents, error)
}

type TimerService interface {
	Clock(ctx context.Context, fixtureID uint) (*timer.MatchClock, error)
	Configure(ctx context.Context, caller models.Caller, request models.ConfigureTimerRequest) (*timer.MatchClock, error)
	Start(ctx context.Context, caller models.Caller, fixtureID uint) (*timer.MatchClock, error)
	Pause(ctx context.Context, caller models.Caller, fixtureID uint) (*timer.MatchClock, error)
	NextPhase(ctx context.Context, caller models.Caller, fixtureID uint) (*timer.MatchClock, error)
}

type RefereeService interface {
	Get(ctx context.Context, assignmentID uint) (*models.RefereeAssignment, error)
	Assign(ctx context.Context, caller models.Caller, request models.AssignRefereeRequest) (*models.RefereeAssignment, error)
	Approve(ctx context.Context, caller models.Caller, assignmentID uint) (*models.RefereeApproval, error)
}

type NotificationDeliveryService interface {
	Deliver(ctx context.Context, notification models.Notification) error
}
