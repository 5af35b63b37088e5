package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

const maxPresetTextLen = 255

// PresetValidator owns the normalization and uniqueness rules of the preset
// catalog. Uniqueness is case-insensitive within a role; the database index
// on (role, lower(text)) backs the same rule under concurrent writes.
type PresetValidator struct {
	presets repository.PresetRepository
}

// NewPresetValidator constructs the validator.
func NewPresetValidator(presets repository.PresetRepository) *PresetValidator {
	return &PresetValidator{presets: presets}
}

// NormalizeText trims the raw text and enforces the 1..255 length bounds.
func (v *PresetValidator) NormalizeText(raw string) (string, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return "", apperrors.NewValidationError("preset text must not be blank", nil)
	}
	if utf8.RuneCountInString(normalized) > maxPresetTextLen {
		return "", apperrors.NewValidationError("preset text length must be <= 255", map[string]any{
			"max_length": maxPresetTextLen,
		})
	}
	return normalized, nil
}

// EnsureUniqueOnCreate rejects a new preset whose text collides with an
// existing preset of the same role.
func (v *PresetValidator) EnsureUniqueOnCreate(ctx context.Context, role domain.UserRole, text string) error {
	exists, err := v.presets.ExistsByRoleAndText(ctx, role, text)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflict("preset with same text already exists for this role", map[string]any{
			"role": role,
		})
	}
	return nil
}

// EnsureUniqueOnUpdate re-checks uniqueness only when the normalized text
// actually differs from the current one, so re-saving identical text (or a
// case variant of it) is never a conflict with the preset itself.
func (v *PresetValidator) EnsureUniqueOnUpdate(ctx context.Context, existing *domain.IssuePreset, newText string) error {
	if strings.EqualFold(existing.Text, newText) {
		return nil
	}
	return v.EnsureUniqueOnCreate(ctx, existing.Role, newText)
}
