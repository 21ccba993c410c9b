package handlers

import (
	"encoding/json"
	"time"

	domainprofile "github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/domain/rbac"
)

type PermissionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AssignmentResponse struct {
	RoleID         string    `json:"role_id"`
	RoleName       string    `json:"role_name"`
	PermissionID   string    `json:"permission_id"`
	PermissionName string    `json:"permission_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type OverviewResponse struct {
	Roles       []RoleResponse       `json:"roles"`
	Permissions []PermissionResponse `json:"permissions"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type ProfileResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toPermissionResponse(p *rbac.Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toPermissionResponses(perms []*rbac.Permission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, toPermissionResponse(p))
	}
	return out
}

func toRoleResponse(r *rbac.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func toRoleResponses(roles []*rbac.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out
}

func toAssignmentResponses(assignments []rbac.RolePermission) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, AssignmentResponse{
			RoleID:         a.RoleID,
			RoleName:       a.RoleName,
			PermissionID:   a.PermissionID,
			PermissionName: a.PermissionName,
			CreatedAt:      a.CreatedAt,
		})
	}
	return out
}

func toProfileResponse(p *domainprofile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID(),
		UserID:    p.UserID(),
		Email:     p.Email(),
		FullName:  p.FullName(),
		Metadata:  json.RawMessage(p.Metadata()),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toProfileResponses(profiles []*domainprofile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	return out
}
