package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventPresetCreated       EventType = "preset_created"
	EventPresetUpdated       EventType = "preset_updated"
	EventPresetDeleted       EventType = "preset_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID uuid.UUID       `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID        uuid.UUID        `json:"ticket_id"`
	IssueType       domain.IssueType `json:"issue_type"`
	SelectedIssueID *uuid.UUID       `json:"selected_issue_id,omitempty"`
	CommentPresent  bool             `json:"comment_present"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  uuid.UUID           `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// PresetChangedPayload covers preset create/update/delete events.
type PresetChangedPayload struct {
	PresetID uuid.UUID       `json:"preset_id"`
	Role     domain.UserRole `json:"role"`
	Active   bool            `json:"active"`
}
