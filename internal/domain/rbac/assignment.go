package rbac

import "time"

// RolePermission is a junction row joined with both parent names. It has no
// identity beyond the (role, permission) pair.
type RolePermission struct {
	RoleID         string
	RoleName       string
	PermissionID   string
	PermissionName string
	CreatedAt      time.Time
}

// UserRole links an external user account to a role.
type UserRole struct {
	UserID    string
	RoleID    string
	CreatedAt time.Time
}

// PermissionsFor filters a junction list by role ID. Pure derived view, no
// store access.
func PermissionsFor(assignments []RolePermission, roleID string) []string {
	var ids []string
	for _, a := range assignments {
		if a.RoleID == roleID {
			ids = append(ids, a.PermissionID)
		}
	}
	return ids
}
