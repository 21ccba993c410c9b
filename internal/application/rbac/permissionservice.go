package rbac

import (
	"context"
	"fmt"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// PermissionService owns the permission manager workflows: list, create,
// update, delete. Every mutation is followed by a full list refresh at the
// handler layer.
type PermissionService struct {
	permissions rbac.PermissionRepository
	logger      logger.Interface
}

func NewPermissionService(permissions rbac.PermissionRepository, logger logger.Interface) *PermissionService {
	return &PermissionService{
		permissions: permissions,
		logger:      logger,
	}
}

func (s *PermissionService) List(ctx context.Context) ([]*rbac.Permission, error) {
	return s.permissions.List(ctx)
}

func (s *PermissionService) Get(ctx context.Context, id string) (*rbac.Permission, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	perm, err := s.permissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, errors.NewNotFoundError("permission not found")
	}
	return perm, nil
}

func (s *PermissionService) Create(ctx context.Context, name, description string) (*rbac.Permission, error) {
	name = utils.NormalizeName(name)
	description = utils.SanitizeText(description)

	perm, err := rbac.NewPermission(name, description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := s.permissions.ExistsByName(ctx, name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check permission name: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("permission name already exists", name)
	}

	if err := s.permissions.Create(ctx, perm); err != nil {
		return nil, err
	}

	s.logger.Infow("permission created", "permission_id", perm.ID(), "name", perm.Name())
	return perm, nil
}

// Update renames a permission and/or changes its description. A missing ID
// is a silent no-op: the store reports zero affected rows and no error.
func (s *PermissionService) Update(ctx context.Context, id, name, description string) (*rbac.Permission, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	perm, err := s.permissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, nil
	}

	name = utils.NormalizeName(name)
	if name != perm.Name() {
		exists, err := s.permissions.ExistsByName(ctx, name, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check permission name: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("permission name already exists", name)
		}
		if err := perm.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	perm.UpdateDescription(utils.SanitizeText(description))

	if err := s.permissions.Update(ctx, perm); err != nil {
		return nil, err
	}

	s.logger.Infow("permission updated", "permission_id", perm.ID(), "name", perm.Name())
	return perm, nil
}

// Delete removes a permission; role_permissions rows referencing it are
// removed by the store's cascade rule.
func (s *PermissionService) Delete(ctx context.Context, id string) error {
	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := s.permissions.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("permission deleted", "permission_id", id)
	return nil
}
