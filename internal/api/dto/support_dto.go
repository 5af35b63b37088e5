package dto

import (
	"time"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
)

// CreateTicketRequest is the user submission payload. Both fields are
// optional at the transport level; the intake rules decide whether the
// combination is acceptable.
type CreateTicketRequest struct {
	SelectedIssueID *string `json:"selectedIssueId" validate:"omitempty,uuid"`
	Comment         *string `json:"comment"`
}

// TicketCreatedResponse acknowledges a submission.
type TicketCreatedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IssuePresetResponse is the end-user view of an active preset.
type IssuePresetResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CreatePresetRequest is the administrative preset creation payload.
type CreatePresetRequest struct {
	Role      string `json:"role" validate:"required,oneof=ADMIN MENTOR HR STUDENT SUPER_ADMIN"`
	Text      string `json:"text" validate:"required"`
	SortOrder *int   `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

// UpdatePresetRequest carries a partial preset update; absent fields are
// left untouched.
type UpdatePresetRequest struct {
	Text      *string `json:"text"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

// PresetResponse is the administrative preset view.
type PresetResponse struct {
	ID        string          `json:"id"`
	Role      domain.UserRole `json:"role"`
	Text      string          `json:"text"`
	SortOrder int             `json:"sortOrder"`
	Active    bool            `json:"active"`
}

// UpdateTicketStatusRequest carries a status transition.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW IN_PROGRESS CLOSED"`
}

// TicketResponse is the administrative ticket view.
type TicketResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	Role            domain.UserRole     `json:"role"`
	IssueType       domain.IssueType    `json:"issueType"`
	SelectedIssueID *string             `json:"selectedIssueId,omitempty"`
	Comment         *string             `json:"comment,omitempty"`
	Status          domain.TicketStatus `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// TicketPageResponse is one page of the ticket listing.
type TicketPageResponse struct {
	Items      []TicketResponse `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}
