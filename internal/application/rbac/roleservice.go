package rbac

import (
	"context"
	"fmt"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// RoleService mirrors PermissionService for the role entity. Deleting a role
// cascades to both junction tables.
type RoleService struct {
	roles  rbac.RoleRepository
	logger logger.Interface
}

func NewRoleService(roles rbac.RoleRepository, logger logger.Interface) *RoleService {
	return &RoleService{
		roles:  roles,
		logger: logger,
	}
}

func (s *RoleService) List(ctx context.Context) ([]*rbac.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*rbac.Role, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NewNotFoundError("role not found")
	}
	return role, nil
}

func (s *RoleService) Create(ctx context.Context, name, description string) (*rbac.Role, error) {
	name = utils.NormalizeName(name)
	description = utils.SanitizeText(description)

	role, err := rbac.NewRole(name, description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := s.roles.ExistsByName(ctx, name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("role name already exists", name)
	}

	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Infow("role created", "role_id", role.ID(), "name", role.Name())
	return role, nil
}

// Update renames a role and/or changes its description. A missing ID is a
// silent no-op.
func (s *RoleService) Update(ctx context.Context, id, name, description string) (*rbac.Role, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	name = utils.NormalizeName(name)
	if name != role.Name() {
		exists, err := s.roles.ExistsByName(ctx, name, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check role name: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("role name already exists", name)
		}
		if err := role.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	role.UpdateDescription(utils.SanitizeText(description))

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Infow("role updated", "role_id", role.ID(), "name", role.Name())
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("role deleted", "role_id", id)
	return nil
}
