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

type RoleRepositoryImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) rbac.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, role *rbac.Role) error {
	model := &models.RoleModel{
		ID:          uuid.NewString(),
		Name:        role.Name(),
		Description: role.Description(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("role name already exists", role.Name())
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	return role.SetID(model.ID)
}

func (r *RoleRepositoryImpl) GetByID(ctx context.Context, id string) (*rbac.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return roleModelToEntity(&model)
}

func (r *RoleRepositoryImpl) GetByName(ctx context.Context, name string) (*rbac.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return roleModelToEntity(&model)
}

func (r *RoleRepositoryImpl) List(ctx context.Context) ([]*rbac.Role, error) {
	var roleModels []*models.RoleModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roleModelsToEntities(roleModels)
}

func (r *RoleRepositoryImpl) Update(ctx context.Context, role *rbac.Role) error {
	result := r.db.WithContext(ctx).Model(&models.RoleModel{}).
		Where("id = ?", role.ID()).
		Updates(map[string]interface{}{
			"name":        role.Name(),
			"description": role.Description(),
			"updated_at":  role.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("role name already exists", role.Name())
		}
		return fmt.Errorf("failed to update role: %w", result.Error)
	}

	// Zero rows affected means the ID does not exist; treated as a no-op.
	return nil
}

func (r *RoleRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.RoleModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("role not found")
	}
	return nil
}

func (r *RoleRepositoryImpl) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.RoleModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check role name existence: %w", err)
	}
	return count > 0, nil
}

func roleModelToEntity(model *models.RoleModel) (*rbac.Role, error) {
	return rbac.ReconstructRole(
		model.ID,
		model.Name,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func roleModelsToEntities(roleModels []*models.RoleModel) ([]*rbac.Role, error) {
	roles := make([]*rbac.Role, 0, len(roleModels))
	for _, model := range roleModels {
		role, err := roleModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
