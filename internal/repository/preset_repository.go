package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
)

// PresetRepository encapsulates issue-preset persistence.
type PresetRepository interface {
	Create(ctx context.Context, preset *domain.IssuePreset) error
	Update(ctx context.Context, preset *domain.IssuePreset) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.IssuePreset, error)
	ExistsByRoleAndText(ctx context.Context, role domain.UserRole, text string) (bool, error)
	ListAll(ctx context.Context) ([]domain.IssuePreset, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, error)
	ListActiveByRole(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, error)
}

type presetRepository struct {
	pool *pgxpool.Pool
}

// NewPresetRepository instantiates the repository.
func NewPresetRepository(pool *pgxpool.Pool) PresetRepository {
	return &presetRepository{pool: pool}
}

func (r *presetRepository) Create(ctx context.Context, preset *domain.IssuePreset) error {
	const query = `
        INSERT INTO support_issue_presets (role, text, sort_order, active)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		preset.Role,
		preset.Text,
		preset.SortOrder,
		preset.Active,
	).Scan(&preset.ID)
}

func (r *presetRepository) Update(ctx context.Context, preset *domain.IssuePreset) error {
	const query = `
        UPDATE support_issue_presets SET text=$1, sort_order=$2, active=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		preset.Text,
		preset.SortOrder,
		preset.Active,
		preset.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *presetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM support_issue_presets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *presetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.IssuePreset, error) {
	const query = `
        SELECT id, role, text, sort_order, active
        FROM support_issue_presets WHERE id=$1`
	var preset domain.IssuePreset
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&preset.ID,
		&preset.Role,
		&preset.Text,
		&preset.SortOrder,
		&preset.Active,
	); err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *presetRepository) ExistsByRoleAndText(ctx context.Context, role domain.UserRole, text string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM support_issue_presets
            WHERE role=$1 AND LOWER(text)=LOWER($2)
        )`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, role, text).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *presetRepository) ListAll(ctx context.Context) ([]domain.IssuePreset, error) {
	const query = `
        SELECT id, role, text, sort_order, active
        FROM support_issue_presets
        ORDER BY role ASC, sort_order ASC`
	return r.queryPresets(ctx, query)
}

func (r *presetRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, error) {
	const query = `
        SELECT id, role, text, sort_order, active
        FROM support_issue_presets
        WHERE role=$1
        ORDER BY sort_order ASC`
	return r.queryPresets(ctx, query, role)
}

func (r *presetRepository) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, error) {
	const query = `
        SELECT id, role, text, sort_order, active
        FROM support_issue_presets
        WHERE role=$1 AND active = TRUE
        ORDER BY sort_order ASC`
	return r.queryPresets(ctx, query, role)
}

func (r *presetRepository) queryPresets(ctx context.Context, query string, args ...any) ([]domain.IssuePreset, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.IssuePreset
	for rows.Next() {
		var preset domain.IssuePreset
		if err := rows.Scan(&preset.ID, &preset.Role, &preset.Text, &preset.SortOrder, &preset.Active); err != nil {
			return nil, err
		}
		result = append(result, preset)
	}
	return result, rows.Err()
}
