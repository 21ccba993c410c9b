package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/infrastructure/persistence/models"
	"github.com/accesskit/accesskit/internal/shared/constants"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) rbac.AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

func (r *AssignmentRepositoryImpl) ListAll(ctx context.Context) ([]rbac.RolePermission, error) {
	type row struct {
		RoleID         string
		RoleName       string
		PermissionID   string
		PermissionName string
		CreatedAt      time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table(constants.TableRolePermissions).
		Select(constants.TableRolePermissions+".role_id, "+
			constants.TableRoles+".name AS role_name, "+
			constants.TableRolePermissions+".permission_id, "+
			constants.TablePermissions+".name AS permission_name, "+
			constants.TableRolePermissions+".created_at").
		Joins("INNER JOIN " + constants.TableRoles + " ON " + constants.TableRoles + ".id = " + constants.TableRolePermissions + ".role_id").
		Joins("INNER JOIN " + constants.TablePermissions + " ON " + constants.TablePermissions + ".id = " + constants.TableRolePermissions + ".permission_id").
		Order(constants.TableRoles + ".name ASC, " + constants.TablePermissions + ".name ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]rbac.RolePermission, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, rbac.RolePermission{
			RoleID:         row.RoleID,
			RoleName:       row.RoleName,
			PermissionID:   row.PermissionID,
			PermissionName: row.PermissionName,
			CreatedAt:      row.CreatedAt,
		})
	}

	return assignments, nil
}

func (r *AssignmentRepositoryImpl) PermissionsForRole(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
	var permModels []*models.PermissionModel
	err := r.db.WithContext(ctx).
		Table(constants.TablePermissions).
		Joins("INNER JOIN "+constants.TableRolePermissions+" ON "+constants.TablePermissions+".id = "+constants.TableRolePermissions+".permission_id").
		Where(constants.TableRolePermissions+".role_id = ?", roleID).
		Order(constants.TablePermissions + ".name ASC").
		Find(&permModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

// Replace deletes all junction rows for the role and inserts the new set.
// The two steps are deliberately not wrapped in a transaction to match the
// reference system; a failure after the delete leaves the role with no
// permissions until the caller retries.
func (r *AssignmentRepositoryImpl) Replace(ctx context.Context, roleID string, permissionIDs []string) error {
	if err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	if len(permissionIDs) == 0 {
		return nil
	}

	rows := make([]models.RolePermissionModel, 0, len(permissionIDs))
	for _, permID := range permissionIDs {
		rows = append(rows, models.RolePermissionModel{
			RoleID:       roleID,
			PermissionID: permID,
		})
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to assign permissions: %w", err)
	}

	return nil
}

func (r *AssignmentRepositoryImpl) Remove(ctx context.Context, roleID, permissionID string) error {
	result := r.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&models.RolePermissionModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to remove assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("assignment not found")
	}
	return nil
}

func (r *AssignmentRepositoryImpl) AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error {
	if len(roleIDs) == 0 {
		return nil
	}

	userRoles := make([]models.UserRoleModel, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		userRoles = append(userRoles, models.UserRoleModel{
			UserID: userID,
			RoleID: roleID,
		})
	}

	if err := r.db.WithContext(ctx).Create(&userRoles).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("role already assigned to user")
		}
		return fmt.Errorf("failed to assign roles to user: %w", err)
	}
	return nil
}

func (r *AssignmentRepositoryImpl) RemoveRolesFromUser(ctx context.Context, userID string, roleIDs []string) error {
	if len(roleIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND role_id IN ?", userID, roleIDs).
		Delete(&models.UserRoleModel{}).Error
}

func (r *AssignmentRepositoryImpl) RolesForUser(ctx context.Context, userID string) ([]*rbac.Role, error) {
	var roleModels []*models.RoleModel
	err := r.db.WithContext(ctx).
		Table(constants.TableRoles).
		Joins("INNER JOIN "+constants.TableUserRoles+" ON "+constants.TableRoles+".id = "+constants.TableUserRoles+".role_id").
		Where(constants.TableUserRoles+".user_id = ?", userID).
		Order(constants.TableRoles + ".name ASC").
		Find(&roleModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}

	return roleModelsToEntities(roleModels)
}
