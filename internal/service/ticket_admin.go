package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/events"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

// TicketPage is one page of the administrative ticket listing.
type TicketPage struct {
	Items      []domain.Ticket
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

// TicketAdminService lists tickets and performs status transitions.
type TicketAdminService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTicketAdminService constructs the service.
func NewTicketAdminService(tickets repository.TicketRepository, dispatcher events.Dispatcher, logger *zap.Logger) *TicketAdminService {
	return &TicketAdminService{tickets: tickets, dispatcher: dispatcher, logger: logger}
}

// ListTickets returns one page of tickets, optionally filtered by status.
// Pages are 1-based; ordering is stable across pages of one listing.
func (s *TicketAdminService) ListTickets(ctx context.Context, status *domain.TicketStatus, page, size int) (*TicketPage, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	tickets, total, err := s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		Status: status,
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &TicketPage{
		Items:      tickets,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus unconditionally sets the ticket status. Any status may follow
// any status, including re-setting the current one; updated_at is refreshed
// either way.
func (s *TicketAdminService) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status domain.TicketStatus) (*domain.Ticket, error) {
	current, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID.String()})
		}
		return nil, err
	}

	updated, err := s.tickets.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID.String()})
		}
		return nil, err
	}

	s.logger.Info("ticket status updated",
		zap.String("ticket_id", ticketID.String()),
		zap.String("old_status", string(current.Status)),
		zap.String("new_status", string(status)),
	)

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventTicketStatusChanged,
			Payload: events.TicketStatusChangedPayload{
				TicketID:  ticketID,
				OldStatus: current.Status,
				NewStatus: status,
			},
		})
	}

	return updated, nil
}
