package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Consort-Group-Corp/support-service/internal/api/dto"
	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/service"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

// AdminPresetsHandler serves the super-admin preset catalog endpoints.
type AdminPresetsHandler struct {
	catalog  *service.PresetCatalogService
	validate *validator.Validate
}

// NewAdminPresetsHandler constructs the handler.
func NewAdminPresetsHandler(catalog *service.PresetCatalogService, validate *validator.Validate) *AdminPresetsHandler {
	return &AdminPresetsHandler{catalog: catalog, validate: validate}
}

// CreatePreset POST /api/v1/admin/support/presets.
func (h *AdminPresetsHandler) CreatePreset(c *fiber.Ctx) error {
	var req dto.CreatePresetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"cause": err.Error()})
	}

	role, err := domain.ParseUserRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("unknown role", nil)
	}

	preset, err := h.catalog.Create(c.UserContext(), service.PresetCreateInput{
		Role:      role,
		Text:      req.Text,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": presetResponse(preset)})
}

// ListPresets GET /api/v1/admin/support/presets. Optional role filter; the
// administrative view includes inactive presets.
func (h *AdminPresetsHandler) ListPresets(c *fiber.Ctx) error {
	var role *domain.UserRole
	if raw := c.Query("role"); raw != "" {
		parsed, err := domain.ParseUserRole(raw)
		if err != nil {
			return apperrors.NewValidationError("unknown role", nil)
		}
		role = &parsed
	}

	presets, err := h.catalog.List(c.UserContext(), role)
	if err != nil {
		return err
	}

	items := make([]dto.PresetResponse, 0, len(presets))
	for i := range presets {
		items = append(items, presetResponse(&presets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdatePreset PATCH /api/v1/admin/support/presets/:id.
func (h *AdminPresetsHandler) UpdatePreset(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("id must be a valid id", nil)
	}

	var req dto.UpdatePresetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"cause": err.Error()})
	}

	preset, err := h.catalog.Update(c.UserContext(), id, service.PresetUpdateInput{
		Text:      req.Text,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": presetResponse(preset)})
}

// DeletePreset DELETE /api/v1/admin/support/presets/:id.
func (h *AdminPresetsHandler) DeletePreset(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("id must be a valid id", nil)
	}
	if err := h.catalog.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func presetResponse(preset *domain.IssuePreset) dto.PresetResponse {
	return dto.PresetResponse{
		ID:        preset.ID.String(),
		Role:      preset.Role,
		Text:      preset.Text,
		SortOrder: preset.SortOrder,
		Active:    preset.Active,
	}
}
