package handlers

import (
	"context"

	apprbac "github.com/accesskit/accesskit/internal/application/rbac"
	domainprofile "github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/domain/rbac"
)

// Service interfaces consumed by the handlers. The application services
// satisfy them; tests substitute mocks.

type PermissionService interface {
	List(ctx context.Context) ([]*rbac.Permission, error)
	Get(ctx context.Context, id string) (*rbac.Permission, error)
	Create(ctx context.Context, name, description string) (*rbac.Permission, error)
	Update(ctx context.Context, id, name, description string) (*rbac.Permission, error)
	Delete(ctx context.Context, id string) error
}

type RoleService interface {
	List(ctx context.Context) ([]*rbac.Role, error)
	Get(ctx context.Context, id string) (*rbac.Role, error)
	Create(ctx context.Context, name, description string) (*rbac.Role, error)
	Update(ctx context.Context, id, name, description string) (*rbac.Role, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	Overview(ctx context.Context) (*apprbac.Overview, error)
	PermissionsFor(ctx context.Context, roleID string) ([]*rbac.Permission, error)
	Replace(ctx context.Context, roleID string, permissionIDs []string) error
	Remove(ctx context.Context, roleID, permissionID string) error
}

type ProfileService interface {
	List(ctx context.Context) ([]*domainprofile.Profile, error)
	Get(ctx context.Context, userID string) (*domainprofile.Profile, error)
	UpdateFullName(ctx context.Context, ownerID, fullName string) (*domainprofile.Profile, error)
}
