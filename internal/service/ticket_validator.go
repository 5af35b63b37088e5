package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

const maxCommentLen = 500

// TicketValidator evaluates the submission rules for new tickets. It has no
// persistence side effects beyond reading preset state.
type TicketValidator struct {
	presets repository.PresetRepository
	logger  *zap.Logger
}

// NewTicketValidator constructs the validator.
func NewTicketValidator(presets repository.PresetRepository, logger *zap.Logger) *TicketValidator {
	return &TicketValidator{presets: presets, logger: logger}
}

// EnsureRoleMayFileTicket bars the elevated administrative role from filing.
func (v *TicketValidator) EnsureRoleMayFileTicket(role domain.UserRole) error {
	if role == domain.RoleSuperAdmin {
		v.logger.Warn("super admin attempted to create a support ticket")
		return apperrors.NewValidationError("super admin cannot create support tickets", nil)
	}
	return nil
}

// ResolvePreset looks up the referenced preset and checks it is usable by the
// caller: it must exist, be active, and belong to the caller's role. All
// three failures are validation errors distinguished in message only.
func (v *TicketValidator) ResolvePreset(ctx context.Context, presetID uuid.UUID, role domain.UserRole) (*domain.IssuePreset, error) {
	preset, err := v.presets.GetByID(ctx, presetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			v.logger.Warn("preset not found", zap.String("preset_id", presetID.String()))
			return nil, apperrors.NewValidationError("preset not found", nil)
		}
		return nil, err
	}
	if !preset.Active || preset.Role != role {
		v.logger.Warn("preset not available for role",
			zap.String("preset_id", presetID.String()),
			zap.String("preset_role", string(preset.Role)),
			zap.String("user_role", string(role)),
			zap.Bool("active", preset.Active),
		)
		return nil, apperrors.NewValidationError("preset is not available for this role", nil)
	}
	return preset, nil
}

// NormalizeRequiredComment trims and bounds the comment of a CUSTOM ticket.
// Absent and blank comments are equivalent failures.
func (v *TicketValidator) NormalizeRequiredComment(raw *string) (string, error) {
	if raw == nil {
		return "", apperrors.NewValidationError("either selectedIssueId or comment is required", nil)
	}
	normalized := strings.TrimSpace(*raw)
	if normalized == "" {
		return "", apperrors.NewValidationError("either selectedIssueId or comment is required", nil)
	}
	if utf8.RuneCountInString(normalized) > maxCommentLen {
		return "", apperrors.NewValidationError("comment length must be <= 500", map[string]any{
			"max_length": maxCommentLen,
		})
	}
	return normalized, nil
}

// NormalizeOptionalComment trims the note attached to a PRESET ticket. Absent
// or blank input means "no comment" rather than an error.
func (v *TicketValidator) NormalizeOptionalComment(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	normalized := strings.TrimSpace(*raw)
	if normalized == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(normalized) > maxCommentLen {
		return nil, apperrors.NewValidationError("comment length must be <= 500", map[string]any{
			"max_length": maxCommentLen,
		})
	}
	return &normalized, nil
}
