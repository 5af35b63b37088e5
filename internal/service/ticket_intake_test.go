package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	"github.com/Consort-Group-Corp/support-service/internal/repository"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

type ticketRepoStub struct {
	tickets map[uuid.UUID]domain.Ticket
	seq     int
	err     error
}

func newTicketRepoStub() *ticketRepoStub {
	return &ticketRepoStub{tickets: make(map[uuid.UUID]domain.Ticket)}
}

func (s *ticketRepoStub) Create(ctx context.Context, ticket *domain.Ticket) error {
	if s.err != nil {
		return s.err
	}
	s.seq++
	ticket.ID = uuid.New()
	ticket.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Millisecond)
	ticket.UpdatedAt = ticket.CreatedAt
	s.tickets[ticket.ID] = *ticket
	return nil
}

func (s *ticketRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	if s.err != nil {
		return nil, s.err
	}
	ticket, ok := s.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (s *ticketRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TicketStatus) (*domain.Ticket, error) {
	if s.err != nil {
		return nil, s.err
	}
	ticket, ok := s.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.UpdatedAt = ticket.UpdatedAt.Add(time.Millisecond)
	s.tickets[id] = ticket
	return &ticket, nil
}

func (s *ticketRepoStub) ListWithFilter(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	matched := []domain.Ticket{}
	for _, ticket := range s.tickets {
		if filter.Status != nil && ticket.Status != *filter.Status {
			continue
		}
		matched = append(matched, ticket)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))

	offset := filter.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func newIntake(tickets *ticketRepoStub, presets *presetRepoStub) *TicketIntakeService {
	return NewTicketIntakeService(TicketIntakeDependencies{
		TicketRepo: tickets,
		Validator:  NewTicketValidator(presets, zap.NewNop()),
		Logger:     zap.NewNop(),
	})
}

func TestCreateTicketWithPreset(t *testing.T) {
	presets := newPresetRepoStub()
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, presets)
	ctx := context.Background()

	preset := domain.IssuePreset{Role: domain.RoleMentor, Text: "Cannot save course", SortOrder: 2, Active: true}
	require.NoError(t, presets.Create(ctx, &preset))

	userID := uuid.New()
	receipt, err := intake.CreateTicket(ctx, userID, domain.RoleMentor, TicketCreateInput{
		SelectedIssueID: &preset.ID,
		Comment:         strPtr("fails on save button"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", receipt.Status)

	require.Len(t, tickets.tickets, 1)
	for _, ticket := range tickets.tickets {
		assert.Equal(t, domain.IssueTypePreset, ticket.IssueType)
		assert.Equal(t, domain.TicketStatusNew, ticket.Status)
		assert.Equal(t, userID, ticket.UserID)
		assert.Equal(t, domain.RoleMentor, ticket.Role)
		require.NotNil(t, ticket.SelectedIssueID)
		assert.Equal(t, preset.ID, *ticket.SelectedIssueID)
		require.NotNil(t, ticket.Comment)
		assert.Equal(t, "fails on save button", *ticket.Comment)
	}
}

func TestCreateTicketWithPresetAndBlankComment(t *testing.T) {
	presets := newPresetRepoStub()
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, presets)
	ctx := context.Background()

	preset := domain.IssuePreset{Role: domain.RoleStudent, Text: "Video not loading", Active: true}
	require.NoError(t, presets.Create(ctx, &preset))

	_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleStudent, TicketCreateInput{
		SelectedIssueID: &preset.ID,
		Comment:         strPtr("   "),
	})
	require.NoError(t, err)

	for _, ticket := range tickets.tickets {
		assert.Nil(t, ticket.Comment)
	}
}

func TestCreateTicketCustomComment(t *testing.T) {
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, newPresetRepoStub())
	ctx := context.Background()

	_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleHR, TicketCreateInput{
		Comment: strPtr("  payroll page does not open  "),
	})
	require.NoError(t, err)

	for _, ticket := range tickets.tickets {
		assert.Equal(t, domain.IssueTypeCustom, ticket.IssueType)
		assert.Nil(t, ticket.SelectedIssueID)
		require.NotNil(t, ticket.Comment)
		assert.Equal(t, "payroll page does not open", *ticket.Comment)
	}
}

func TestCreateTicketCommentLengthBoundary(t *testing.T) {
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, newPresetRepoStub())
	ctx := context.Background()

	_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleStudent, TicketCreateInput{
		Comment: strPtr(strings.Repeat("a", 500)),
	})
	require.NoError(t, err)
	assert.Len(t, tickets.tickets, 1)

	_, err = intake.CreateTicket(ctx, uuid.New(), domain.RoleStudent, TicketCreateInput{
		Comment: strPtr(strings.Repeat("a", 501)),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Len(t, tickets.tickets, 1)
}

func TestCreateTicketNeitherPresetNorComment(t *testing.T) {
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, newPresetRepoStub())

	_, err := intake.CreateTicket(context.Background(), uuid.New(), domain.RoleStudent, TicketCreateInput{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Empty(t, tickets.tickets)
}

func TestCreateTicketSuperAdminAlwaysRejected(t *testing.T) {
	presets := newPresetRepoStub()
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, presets)
	ctx := context.Background()

	preset := domain.IssuePreset{Role: domain.RoleSuperAdmin, Text: "Anything", Active: true}
	require.NoError(t, presets.Create(ctx, &preset))

	inputs := []TicketCreateInput{
		{},
		{Comment: strPtr("a perfectly valid comment")},
		{SelectedIssueID: &preset.ID},
	}
	for _, input := range inputs {
		_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleSuperAdmin, input)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
	assert.Empty(t, tickets.tickets)
}

func TestCreateTicketInactivePresetRejected(t *testing.T) {
	presets := newPresetRepoStub()
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, presets)
	ctx := context.Background()

	preset := domain.IssuePreset{Role: domain.RoleMentor, Text: "Retired issue", Active: false}
	require.NoError(t, presets.Create(ctx, &preset))

	_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleMentor, TicketCreateInput{
		SelectedIssueID: &preset.ID,
	})
	require.Error(t, err)
	assert.Empty(t, tickets.tickets)
}

func TestCreateTicketForeignRolePresetRejected(t *testing.T) {
	presets := newPresetRepoStub()
	tickets := newTicketRepoStub()
	intake := newIntake(tickets, presets)
	ctx := context.Background()

	preset := domain.IssuePreset{Role: domain.RoleHR, Text: "HR only", Active: true}
	require.NoError(t, presets.Create(ctx, &preset))

	_, err := intake.CreateTicket(ctx, uuid.New(), domain.RoleStudent, TicketCreateInput{
		SelectedIssueID: &preset.ID,
	})
	require.Error(t, err)
	assert.Empty(t, tickets.tickets)
}
