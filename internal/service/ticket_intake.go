package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/events"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
)

// TicketCreateInput is the user submission payload.
type TicketCreateInput struct {
	SelectedIssueID *uuid.UUID
	Comment         *string
}

// TicketReceipt acknowledges a successful submission. The ticket body is not
// returned to the caller in this flow.
type TicketReceipt struct {
	Status  string
	Message string
}

// TicketIntakeService orchestrates ticket creation: role guard, preset or
// comment validation, then a single persisted write.
type TicketIntakeService struct {
	tickets    repository.TicketRepository
	validator  *TicketValidator
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketIntakeDependencies bundles collaborators for intake.
type TicketIntakeDependencies struct {
	TicketRepo repository.TicketRepository
	Validator  *TicketValidator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketIntakeService constructs the service.
func NewTicketIntakeService(deps TicketIntakeDependencies) *TicketIntakeService {
	return &TicketIntakeService{
		tickets:    deps.TicketRepo,
		validator:  deps.Validator,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateTicket files a ticket for the authenticated caller. All validation
// happens before the write, so a failed call leaves no partial state.
func (s *TicketIntakeService) CreateTicket(ctx context.Context, userID uuid.UUID, role domain.UserRole, input TicketCreateInput) (*TicketReceipt, error) {
	s.logger.Info("create support ticket request",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.Any("selected_issue_id", input.SelectedIssueID),
	)

	if err := s.validator.EnsureRoleMayFileTicket(role); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		UserID: userID,
		Role:   role,
		Status: domain.TicketStatusNew,
	}

	if input.SelectedIssueID != nil {
		preset, err := s.validator.ResolvePreset(ctx, *input.SelectedIssueID, role)
		if err != nil {
			return nil, err
		}
		comment, err := s.validator.NormalizeOptionalComment(input.Comment)
		if err != nil {
			return nil, err
		}
		ticket.IssueType = domain.IssueTypePreset
		ticket.SelectedIssueID = &preset.ID
		ticket.Comment = comment
	} else {
		comment, err := s.validator.NormalizeRequiredComment(input.Comment)
		if err != nil {
			return nil, err
		}
		ticket.IssueType = domain.IssueTypeCustom
		ticket.Comment = &comment
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("support ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("issue_type", string(ticket.IssueType)),
		zap.String("status", string(ticket.Status)),
	)

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			Type:  events.EventTicketCreated,
			Actor: events.Actor{UserID: userID, Role: role},
			Payload: events.TicketCreatedPayload{
				TicketID:        ticket.ID,
				IssueType:       ticket.IssueType,
				SelectedIssueID: ticket.SelectedIssueID,
				CommentPresent:  ticket.Comment != nil,
			},
		})
	}

	return &TicketReceipt{Status: "SUCCESS", Message: "ticket submitted"}, nil
}
