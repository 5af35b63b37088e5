package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Consort-Group-Corp/support-service/internal/api/dto"
	"github.com/Consort-Group-Corp/support-service/internal/auth"
	"github.com/Consort-Group-Corp/support-service/internal/service"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

// SupportHandler serves the end-user support endpoints.
type SupportHandler struct {
	intake   *service.TicketIntakeService
	catalog  *service.PresetCatalogService
	validate *validator.Validate
}

// NewSupportHandler constructs the handler.
func NewSupportHandler(intake *service.TicketIntakeService, catalog *service.PresetCatalogService, validate *validator.Validate) *SupportHandler {
	return &SupportHandler{intake: intake, catalog: catalog, validate: validate}
}

// GetPresets GET /api/v1/support/presets. Returns the active presets for the
// caller's own role.
func (h *SupportHandler) GetPresets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	presets, err := h.catalog.ActivePresetsFor(c.UserContext(), principal.Role)
	if err != nil {
		return err
	}

	items := make([]dto.IssuePresetResponse, 0, len(presets))
	for _, preset := range presets {
		items = append(items, dto.IssuePresetResponse{
			ID:   preset.ID.String(),
			Text: preset.Text,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateTicket POST /api/v1/support/tickets.
func (h *SupportHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"cause": err.Error()})
	}

	input := service.TicketCreateInput{Comment: req.Comment}
	if req.SelectedIssueID != nil {
		id, err := uuid.Parse(*req.SelectedIssueID)
		if err != nil {
			return apperrors.NewValidationError("selectedIssueId must be a valid id", nil)
		}
		input.SelectedIssueID = &id
	}

	receipt, err := h.intake.CreateTicket(c.UserContext(), principal.UserID, principal.Role, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.TicketCreatedResponse{
		Status:  receipt.Status,
		Message: receipt.Message,
	})
}
