package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Consort-Group-Corp/support-service/internal/api/dto"
	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/service"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

// AdminTicketsHandler serves the super-admin ticket triage endpoints.
type AdminTicketsHandler struct {
	admin    *service.TicketAdminService
	validate *validator.Validate
}

// NewAdminTicketsHandler constructs the handler.
func NewAdminTicketsHandler(admin *service.TicketAdminService, validate *validator.Validate) *AdminTicketsHandler {
	return &AdminTicketsHandler{admin: admin, validate: validate}
}

// ListTickets GET /api/v1/admin/support/tickets.
func (h *AdminTicketsHandler) ListTickets(c *fiber.Ctx) error {
	var status *domain.TicketStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.TicketStatus(raw)
		switch parsed {
		case domain.TicketStatusNew, domain.TicketStatusInProgress, domain.TicketStatusClosed:
			status = &parsed
		default:
			return apperrors.NewValidationError("unknown status", nil)
		}
	}
	page := parseIntQuery(c.Query("page"), 1)
	size := parseIntQuery(c.Query("size"), 20)

	result, err := h.admin.ListTickets(c.UserContext(), status, page, size)
	if err != nil {
		return err
	}

	items := make([]dto.TicketResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, ticketResponse(&result.Items[i]))
	}
	return c.JSON(fiber.Map{"data": dto.TicketPageResponse{
		Items:      items,
		Page:       result.Page,
		Size:       result.Size,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}})
}

// UpdateTicketStatus PATCH /api/v1/admin/support/tickets/:id/status.
func (h *AdminTicketsHandler) UpdateTicketStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("id must be a valid id", nil)
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"cause": err.Error()})
	}

	ticket, err := h.admin.UpdateStatus(c.UserContext(), id, domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	resp := dto.TicketResponse{
		ID:        ticket.ID.String(),
		UserID:    ticket.UserID.String(),
		Role:      ticket.Role,
		IssueType: ticket.IssueType,
		Comment:   ticket.Comment,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
	if ticket.SelectedIssueID != nil {
		id := ticket.SelectedIssueID.String()
		resp.SelectedIssueID = &id
	}
	return resp
}

func parseIntQuery(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
