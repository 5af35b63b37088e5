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

// PresetCreateInput describes a new preset.
type PresetCreateInput struct {
	Role      domain.UserRole
	Text      string
	SortOrder *int
	Active    *bool
}

// PresetUpdateInput describes a partial preset update; nil fields are no-ops.
type PresetUpdateInput struct {
	Text      *string
	SortOrder *int
	Active    *bool
}

// PresetCatalogService owns the preset catalog: administrative CRUD plus the
// cached end-user view of active presets.
type PresetCatalogService struct {
	presets    repository.PresetRepository
	cache      repository.PresetCache
	validator  *PresetValidator
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PresetCatalogDependencies bundles collaborators for the catalog.
type PresetCatalogDependencies struct {
	PresetRepo repository.PresetRepository
	Cache      repository.PresetCache
	Validator  *PresetValidator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewPresetCatalogService constructs the service.
func NewPresetCatalogService(deps PresetCatalogDependencies) *PresetCatalogService {
	return &PresetCatalogService{
		presets:    deps.PresetRepo,
		cache:      deps.Cache,
		validator:  deps.Validator,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Create normalizes and persists a new preset, applying defaults
// sortOrder=0 and active=true when omitted.
func (s *PresetCatalogService) Create(ctx context.Context, input PresetCreateInput) (*domain.IssuePreset, error) {
	text, err := s.validator.NormalizeText(input.Text)
	if err != nil {
		return nil, err
	}
	if err := s.validator.EnsureUniqueOnCreate(ctx, input.Role, text); err != nil {
		return nil, err
	}

	preset := &domain.IssuePreset{
		Role:      input.Role,
		Text:      text,
		SortOrder: 0,
		Active:    true,
	}
	if input.SortOrder != nil {
		preset.SortOrder = *input.SortOrder
	}
	if input.Active != nil {
		preset.Active = *input.Active
	}

	if err := s.presets.Create(ctx, preset); err != nil {
		return nil, err
	}
	s.invalidate(ctx, preset.Role)
	s.publish(ctx, events.EventPresetCreated, preset)

	s.logger.Info("preset created",
		zap.String("preset_id", preset.ID.String()),
		zap.String("role", string(preset.Role)),
		zap.String("text", preset.Text),
	)
	return preset, nil
}

// Update applies the supplied fields to an existing preset. Text uniqueness
// is re-checked only when the normalized text differs from the current one.
func (s *PresetCatalogService) Update(ctx context.Context, id uuid.UUID, input PresetUpdateInput) (*domain.IssuePreset, error) {
	preset, err := s.presets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("preset", map[string]any{"id": id.String()})
		}
		return nil, err
	}

	if input.Text != nil {
		text, err := s.validator.NormalizeText(*input.Text)
		if err != nil {
			return nil, err
		}
		if err := s.validator.EnsureUniqueOnUpdate(ctx, preset, text); err != nil {
			return nil, err
		}
		preset.Text = text
	}
	if input.SortOrder != nil {
		preset.SortOrder = *input.SortOrder
	}
	if input.Active != nil {
		preset.Active = *input.Active
	}

	if err := s.presets.Update(ctx, preset); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("preset", map[string]any{"id": id.String()})
		}
		return nil, err
	}
	s.invalidate(ctx, preset.Role)
	s.publish(ctx, events.EventPresetUpdated, preset)

	s.logger.Info("preset updated",
		zap.String("preset_id", preset.ID.String()),
		zap.Bool("active", preset.Active),
		zap.Int("sort_order", preset.SortOrder),
	)
	return preset, nil
}

// Delete removes a preset permanently. Tickets referencing it keep their
// weak reference; the store nils it out.
func (s *PresetCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	preset, err := s.presets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("preset", map[string]any{"id": id.String()})
		}
		return err
	}
	if err := s.presets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("preset", map[string]any{"id": id.String()})
		}
		return err
	}
	s.invalidate(ctx, preset.Role)
	s.publish(ctx, events.EventPresetDeleted, preset)

	s.logger.Info("preset deleted", zap.String("preset_id", id.String()))
	return nil
}

// List returns the administrative view: all presets of the given role ordered
// by sort order, or every preset ordered by role then sort order when no role
// is given. Inactive presets are included.
func (s *PresetCatalogService) List(ctx context.Context, role *domain.UserRole) ([]domain.IssuePreset, error) {
	if role == nil {
		return s.presets.ListAll(ctx)
	}
	return s.presets.ListByRole(ctx, *role)
}

// ActivePresetsFor returns the end-user view: active presets of the caller's
// role, read through the cache.
func (s *PresetCatalogService) ActivePresetsFor(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, error) {
	if s.cache != nil {
		if presets, ok := s.cache.GetActive(ctx, role); ok {
			return presets, nil
		}
	}
	presets, err := s.presets.ListActiveByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetActive(ctx, role, presets)
	}
	s.logger.Debug("loaded active presets", zap.Int("count", len(presets)), zap.String("role", string(role)))
	return presets, nil
}

func (s *PresetCatalogService) invalidate(ctx context.Context, role domain.UserRole) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, role)
	}
}

func (s *PresetCatalogService) publish(ctx context.Context, eventType events.EventType, preset *domain.IssuePreset) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		Type: eventType,
		Payload: events.PresetChangedPayload{
			PresetID: preset.ID,
			Role:     preset.Role,
			Active:   preset.Active,
		},
	})
}
