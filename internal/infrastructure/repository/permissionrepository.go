package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/infrastructure/persistence/models"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

type PermissionRepositoryImpl struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) rbac.PermissionRepository {
	return &PermissionRepositoryImpl{db: db}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, permission *rbac.Permission) error {
	model := &models.PermissionModel{
		ID:          uuid.NewString(),
		Name:        permission.Name(),
		Description: permission.Description(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("permission name already exists", permission.Name())
		}
		return fmt.Errorf("failed to create permission: %w", err)
	}

	return permission.SetID(model.ID)
}

func (r *PermissionRepositoryImpl) GetByID(ctx context.Context, id string) (*rbac.Permission, error) {
	var model models.PermissionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) GetByName(ctx context.Context, name string) (*rbac.Permission, error) {
	var model models.PermissionModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission by name: %w", err)
	}

	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) List(ctx context.Context) ([]*rbac.Permission, error) {
	var permModels []*models.PermissionModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func (r *PermissionRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]*rbac.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var permModels []*models.PermissionModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get permissions by IDs: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, permission *rbac.Permission) error {
	result := r.db.WithContext(ctx).Model(&models.PermissionModel{}).
		Where("id = ?", permission.ID()).
		Updates(map[string]interface{}{
			"name":        permission.Name(),
			"description": permission.Description(),
			"updated_at":  permission.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("permission name already exists", permission.Name())
		}
		return fmt.Errorf("failed to update permission: %w", result.Error)
	}

	// Zero rows affected means the ID does not exist; treated as a no-op.
	return nil
}

func (r *PermissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PermissionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("permission not found")
	}
	return nil
}

func (r *PermissionRepositoryImpl) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.PermissionModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check permission name existence: %w", err)
	}
	return count > 0, nil
}

func permissionModelToEntity(model *models.PermissionModel) (*rbac.Permission, error) {
	return rbac.ReconstructPermission(
		model.ID,
		model.Name,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func permissionModelsToEntities(permModels []*models.PermissionModel) ([]*rbac.Permission, error) {
	permissions := make([]*rbac.Permission, 0, len(permModels))
	for _, model := range permModels {
		perm, err := permissionModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct permission: %w", err)
		}
		permissions = append(permissions, perm)
	}
	return permissions, nil
}
