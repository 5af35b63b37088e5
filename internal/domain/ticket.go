package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus enumerates lifecycle states for support tickets. The store
// accepts any declared value in any order; no transition graph is enforced.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "NEW"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// IssueType distinguishes preset-based tickets from free-form ones.
type IssueType string

const (
	IssueTypePreset IssueType = "PRESET"
	IssueTypeCustom IssueType = "CUSTOM"
)

// Ticket is a single support request. SelectedIssueID is a weak reference to
// an IssuePreset: deleting the preset later nils the reference at the store
// without touching the ticket.
type Ticket struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Role            UserRole
	IssueType       IssueType
	SelectedIssueID *uuid.UUID
	Comment         *string
	Status          TicketStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
