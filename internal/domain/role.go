package domain

import "fmt"

// UserRole enumerates the platform roles known to the support service.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleMentor     UserRole = "MENTOR"
	RoleHR         UserRole = "HR"
	RoleStudent    UserRole = "STUDENT"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

// AllRoles lists every declared role in a stable order.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleMentor, RoleHR, RoleStudent, RoleSuperAdmin}
}

// ParseUserRole validates a raw role string against the declared set.
func ParseUserRole(raw string) (UserRole, error) {
	role := UserRole(raw)
	switch role {
	case RoleAdmin, RoleMentor, RoleHR, RoleStudent, RoleSuperAdmin:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}
