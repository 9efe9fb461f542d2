package referee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type RefereeService struct {
	txManager         TxManager
	fixtureRepository FixtureRepository
	refereeRepository RefereeRepository
	notifier          Notifier
	publisher         EventPublisher
	clock             Clock
	logger            Logger
}

func NewRefereeService(
	txManager TxManager,
	fixtureRepository FixtureRepository,
	refereeRepository RefereeRepository,
	notifier Notifier,
	publisher EventPublisher,
	clock Clock,
	logger Logger,
) *RefereeService {
	return &RefereeService{
		txManager:         txManager,
		fixtureRepository: fixtureRepository,
		refereeRepository: refereeRepository,
		notifier:          notifier,
		publisher:         publisher,
		clock:             clock,
		logger:            logger,
	}
}

func (s *RefereeService) Get(ctx context.Context, assignmentID uint) (*models.RefereeAssignment, error) {
	assignment, err := s.refereeRepository.Get(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referee assignment: %w", err)
	}

	return assignment, nil
}

// Assign proposes a referee for a paired match. The assignment attaches to the host fixture and waits for both
// teams to approve it.
func (s *RefereeService) Assign(ctx context.Context, caller models.Caller, request models.AssignRefereeRequest) (*models.RefereeAssignment, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	if strings.TrimSpace(request.RefereeName) == "" && request.RefereeUserID == nil {
		return nil, models.NewInvalidInputError(errors.New("referee name or user is required"))
	}

	host, err := s.hostFixture(ctx, request.FixtureID)
	if err != nil {
		return nil, err
	}

	if host.PairRole != models.HostRole || host.OpponentTeamID == nil {
		return nil, models.NewConflictError(errors.New("referee can be assigned only to a paired match"))
	}

	if host.IsTerminal() {
		return nil, models.NewConflictError(fmt.Errorf("referee cannot be assigned, status is %s", host.MatchStatus))
	}

	if !caller.IsAdminOf(host.TeamID) && !caller.IsAdminOf(*host.OpponentTeamID) {
		return nil, models.NewForbiddenError(errors.New("only an administrator of either team can assign a referee"))
	}

	created, err := s.refereeRepository.Create(ctx, models.RefereeAssignment{
		FixtureID:     host.ID,
		RefereeUserID: request.RefereeUserID,
		RefereeName:   request.RefereeName,
		Status:        models.PendingApproval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create referee assignment: %w", err)
	}

	s.notifier.NotifyTeamAdmins(ctx, []uint{host.TeamID, *host.OpponentTeamID}, models.Notification{
		Title: "Referee proposed",
		Body:  fmt.Sprintf("%s was proposed as referee for %s", created.RefereeName, host.Title),
		URL:   fmt.Sprintf("/fixtures/%d", host.ID),
	})

	s.publish(ctx, models.EventRefereeAssigned, *created)

	return created, nil
}

// Approve records the caller's team approval. The assignment is confirmed once both teams approved it; repeated
// approvals from the same team change nothing.
func (s *RefereeService) Approve(ctx context.Context, caller models.Caller, assignmentID uint) (*models.RefereeApproval, error) {
	if caller.UserID == 0 {
		return nil, models.NewUnauthenticatedError(errors.New("caller is not authenticated"))
	}

	var assignment models.RefereeAssignment
	var changed bool

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.refereeRepository.GetForUpdate(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("failed to get referee assignment: %w", err)
		}

		host, err := s.fixtureRepository.Get(ctx, locked.FixtureID)
		if err != nil {
			return fmt.Errorf("failed to get fixture: %w", err)
		}

		assignment = *locked

		switch {
		case caller.TeamID == host.TeamID:
			changed = !assignment.ApprovedByHostTeam
			assignment.ApprovedByHostTeam = true
		case host.OpponentTeamID != nil && caller.TeamID == *host.OpponentTeamID:
			changed = !assignment.ApprovedByOpponentTeam
			assignment.ApprovedByOpponentTeam = true
		default:
			return models.NewForbiddenError(errors.New("caller's team does not play in this match"))
		}

		if !caller.IsAdmin {
			return models.NewForbiddenError(errors.New("only a team administrator can approve a referee"))
		}

		if !changed {
			return nil
		}

		assignment.Status = models.PendingApproval
		if assignment.BothApproved() {
			assignment.Status = models.RefereeConfirmed
		}

		updated, err := s.refereeRepository.Update(ctx, assignment)
		if err != nil {
			return fmt.Errorf("failed to update referee assignment: %w", err)
		}

		assignment = *updated

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve referee: %w", err)
	}

	if changed {
		s.logger.Info().
			Uint("assignment_id", assignment.ID).
			Str("status", string(assignment.Status)).
			Msg("referee approval recorded")

		s.publish(ctx, models.EventRefereeApproved, assignment)
	}

	return &models.RefereeApproval{
		Assignment:   assignment,
		Status:       assignment.Status,
		BothApproved: assignment.BothApproved(),
	}, nil
}

func (s *RefereeService) hostFixture(ctx context.Context, fixtureID uint) (*models.Fixture, error) {
	fixture, err := s.fixtureRepository.Get(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	if fixture.CanonicalID() == fixture.ID {
		return fixture, nil
	}

	host, err := s.fixtureRepository.Get(ctx, fixture.CanonicalID())
	if err != nil {
		return nil, fmt.Errorf("failed to get host fixture: %w", err)
	}

	return host, nil
}

func (s *RefereeService) publish(ctx context.Context, eventType string, assignment models.RefereeAssignment) {
	s.publisher.Publish(ctx, models.DomainEvent{
		Type:      eventType,
		FixtureID: assignment.FixtureID,
		Payload: models.RefereePayload{
			AssignmentID: assignment.ID,
			Status:       assignment.Status,
		},
		CreatedAt: s.clock.Now(),
	})
}
