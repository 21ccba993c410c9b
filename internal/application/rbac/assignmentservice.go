package rbac

import (
	"context"
	"fmt"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
)

// Overview is the composite dataset backing the assignment screen: all
// roles, all permissions, and every junction row joined with parent names.
type Overview struct {
	Roles       []*rbac.Role
	Permissions []*rbac.Permission
	Assignments []rbac.RolePermission
}

// AssignmentService coordinates the role/permission junction: the composite
// overview fetch, the pre-seeded selection, and the bulk replace.
type AssignmentService struct {
	roles       rbac.RoleRepository
	permissions rbac.PermissionRepository
	assignments rbac.AssignmentRepository
	logger      logger.Interface
}

func NewAssignmentService(
	roles rbac.RoleRepository,
	permissions rbac.PermissionRepository,
	assignments rbac.AssignmentRepository,
	logger logger.Interface,
) *AssignmentService {
	return &AssignmentService{
		roles:       roles,
		permissions: permissions,
		assignments: assignments,
		logger:      logger,
	}
}

// Overview loads roles, permissions, and junction rows as one composite
// operation. Failure of any sub-fetch aborts the whole call.
func (s *AssignmentService) Overview(ctx context.Context) (*Overview, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	permissions, err := s.permissions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}

	assignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	return &Overview{
		Roles:       roles,
		Permissions: permissions,
		Assignments: assignments,
	}, nil
}

// SelectionForRole seeds an editable selection with the permissions
// currently persisted for the role. The edit set always starts from the
// stored set, never empty by default.
func (s *AssignmentService) SelectionForRole(ctx context.Context, roleID string) (*rbac.Selection, error) {
	if roleID == "" {
		return nil, errors.NewValidationError("role is required")
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	perms, err := s.assignments.PermissionsForRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	seed := make([]string, 0, len(perms))
	for _, p := range perms {
		seed = append(seed, p.ID())
	}
	return rbac.NewSelection(roleID, seed), nil
}

// Replace commits a selection: every existing junction row for the role is
// deleted, then one row per selected permission is inserted. An empty role
// or empty selection is rejected before any store call. The two store steps
// are not atomic; see the repository contract.
func (s *AssignmentService) Replace(ctx context.Context, roleID string, permissionIDs []string) error {
	if roleID == "" {
		return errors.NewValidationError("role is required")
	}
	if len(permissionIDs) == 0 {
		return errors.NewValidationError("at least one permission must be selected")
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return errors.NewNotFoundError("role not found")
	}

	perms, err := s.permissions.GetByIDs(ctx, permissionIDs)
	if err != nil {
		return err
	}
	if len(perms) != len(dedupe(permissionIDs)) {
		return errors.NewValidationError("one or more permissions do not exist")
	}

	if err := s.assignments.Replace(ctx, roleID, dedupe(permissionIDs)); err != nil {
		return err
	}

	s.logger.Infow("role permissions replaced",
		"role_id", roleID,
		"permission_count", len(perms))
	return nil
}

// Remove deletes exactly one junction row, independent of Replace.
func (s *AssignmentService) Remove(ctx context.Context, roleID, permissionID string) error {
	if roleID == "" || permissionID == "" {
		return errors.NewValidationError("role and permission are required")
	}

	if err := s.assignments.Remove(ctx, roleID, permissionID); err != nil {
		return err
	}

	s.logger.Infow("role permission removed",
		"role_id", roleID,
		"permission_id", permissionID)
	return nil
}

// PermissionsFor returns the persisted permission set of a role.
func (s *AssignmentService) PermissionsFor(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
	if roleID == "" {
		return nil, errors.NewValidationError("role is required")
	}
	return s.assignments.PermissionsForRole(ctx, roleID)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
