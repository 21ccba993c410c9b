package rbac

import "context"

type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	GetByID(ctx context.Context, id string) (*Permission, error)
	GetByName(ctx context.Context, name string) (*Permission, error)
	// List returns all permissions ordered by name ascending.
	List(ctx context.Context) ([]*Permission, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Permission, error)
	// Update is a no-op when the ID does not exist.
	Update(ctx context.Context, permission *Permission) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id string) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	// List returns all roles ordered by name ascending.
	List(ctx context.Context) ([]*Role, error)
	// Update is a no-op when the ID does not exist.
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
}

type AssignmentRepository interface {
	// ListAll returns every junction row joined with both parent names.
	ListAll(ctx context.Context) ([]RolePermission, error)
	PermissionsForRole(ctx context.Context, roleID string) ([]*Permission, error)
	// Replace deletes all junction rows for the role, then inserts one row per
	// permission ID. The two steps are not wrapped in a transaction; a failure
	// between them leaves the role with no permissions until retried.
	Replace(ctx context.Context, roleID string, permissionIDs []string) error
	Remove(ctx context.Context, roleID, permissionID string) error

	AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error
	RemoveRolesFromUser(ctx context.Context, userID string, roleIDs []string) error
	RolesForUser(ctx context.Context, userID string) ([]*Role, error)
}
