package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
)

func TestPermissionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the name before storing", func(t *testing.T) {
		var stored *rbac.Permission
		repo := &mockPermissionRepository{
			ExistsByNameFunc: func(ctx context.Context, name, excludeID string) (bool, error) {
				return false, nil
			},
			CreateFunc: func(ctx context.Context, permission *rbac.Permission) error {
				stored = permission
				return nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		perm, err := svc.Create(ctx, "  read:users  ", "view accounts")
		require.NoError(t, err)
		assert.Equal(t, "read:users", perm.Name())
		assert.Same(t, perm, stored)
	})

	t.Run("malformed name is a validation error", func(t *testing.T) {
		created := false
		repo := &mockPermissionRepository{
			CreateFunc: func(ctx context.Context, permission *rbac.Permission) error {
				created = true
				return nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		_, err := svc.Create(ctx, "Read Users", "")
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, created)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		repo := &mockPermissionRepository{
			ExistsByNameFunc: func(ctx context.Context, name, excludeID string) (bool, error) {
				return true, nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		_, err := svc.Create(ctx, "read:users", "")
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestPermissionService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing ID is a silent no-op", func(t *testing.T) {
		updated := false
		repo := &mockPermissionRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*rbac.Permission, error) {
				return nil, nil
			},
			UpdateFunc: func(ctx context.Context, permission *rbac.Permission) error {
				updated = true
				return nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		perm, err := svc.Update(ctx, "ghost-id", "read:users", "")
		assert.NoError(t, err)
		assert.Nil(t, perm)
		assert.False(t, updated)
	})

	t.Run("rename onto another row's name conflicts", func(t *testing.T) {
		repo := &mockPermissionRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*rbac.Permission, error) {
				return reconstructPermission(t, id, "read:users"), nil
			},
			ExistsByNameFunc: func(ctx context.Context, name, excludeID string) (bool, error) {
				return true, nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		_, err := svc.Update(ctx, "p1", "write:users", "")
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unchanged name skips the uniqueness check", func(t *testing.T) {
		checked := false
		repo := &mockPermissionRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*rbac.Permission, error) {
				return reconstructPermission(t, id, "read:users"), nil
			},
			ExistsByNameFunc: func(ctx context.Context, name, excludeID string) (bool, error) {
				checked = true
				return false, nil
			},
			UpdateFunc: func(ctx context.Context, permission *rbac.Permission) error {
				return nil
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())

		perm, err := svc.Update(ctx, "p1", "read:users", "new description")
		require.NoError(t, err)
		assert.Equal(t, "new description", perm.Description())
		assert.False(t, checked)
	})
}

func TestPermissionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ID is rejected", func(t *testing.T) {
		svc := NewPermissionService(&mockPermissionRepository{}, logger.NewLogger())
		err := svc.Delete(ctx, "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := &mockPermissionRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				return errors.NewNotFoundError("permission not found")
			},
		}
		svc := NewPermissionService(repo, logger.NewLogger())
		err := svc.Delete(ctx, "ghost-id")
		assert.True(t, errors.IsNotFoundError(err))
	})
}
