package domain

import "github.com/google/uuid"

// IssuePreset is a reusable, role-scoped issue description offered to users
// when filing a ticket. Text is stored trimmed and is unique per role,
// case-insensitively.
type IssuePreset struct {
	ID        uuid.UUID
	Role      UserRole
	Text      string
	SortOrder int
	Active    bool
}
