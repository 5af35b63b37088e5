package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

func TestNormalizeText(t *testing.T) {
	v := NewPresetValidator(newPresetRepoStub())

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trims whitespace", input: "  Login issue  ", want: "Login issue"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "blank rejected", input: "   ", wantErr: true},
		{name: "exactly 255 accepted", input: strings.Repeat("x", 255), want: strings.Repeat("x", 255)},
		{name: "256 rejected", input: strings.Repeat("x", 256), wantErr: true},
		{name: "256 with padding trims to valid", input: " " + strings.Repeat("x", 255) + " ", want: strings.Repeat("x", 255)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.NormalizeText(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnsureUniqueOnUpdateSkipsCheckForSameText(t *testing.T) {
	repo := newPresetRepoStub()
	v := NewPresetValidator(repo)
	ctx := context.Background()

	existing := domain.IssuePreset{Role: domain.RoleHR, Text: "Benefits", Active: true}
	require.NoError(t, repo.Create(ctx, &existing))

	// Same text in a different case is the preset's own text, not a collision.
	assert.NoError(t, v.EnsureUniqueOnUpdate(ctx, &existing, "BENEFITS"))

	other := domain.IssuePreset{Role: domain.RoleHR, Text: "Payroll", Active: true}
	require.NoError(t, repo.Create(ctx, &other))

	err := v.EnsureUniqueOnUpdate(ctx, &existing, "payroll")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}
