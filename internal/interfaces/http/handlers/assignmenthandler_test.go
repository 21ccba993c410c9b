package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprbac "github.com/accesskit/accesskit/internal/application/rbac"
	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/interfaces/http/handlers/testutil"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

type mockAssignmentService struct {
	OverviewFunc       func(ctx context.Context) (*apprbac.Overview, error)
	PermissionsForFunc func(ctx context.Context, roleID string) ([]*rbac.Permission, error)
	ReplaceFunc        func(ctx context.Context, roleID string, permissionIDs []string) error
	RemoveFunc         func(ctx context.Context, roleID, permissionID string) error
}

func (m *mockAssignmentService) Overview(ctx context.Context) (*apprbac.Overview, error) {
	return m.OverviewFunc(ctx)
}

func (m *mockAssignmentService) PermissionsFor(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
	return m.PermissionsForFunc(ctx, roleID)
}

func (m *mockAssignmentService) Replace(ctx context.Context, roleID string, permissionIDs []string) error {
	return m.ReplaceFunc(ctx, roleID, permissionIDs)
}

func (m *mockAssignmentService) Remove(ctx context.Context, roleID, permissionID string) error {
	return m.RemoveFunc(ctx, roleID, permissionID)
}

func testRole(t *testing.T, id, name string) *rbac.Role {
	t.Helper()
	role, err := rbac.ReconstructRole(id, name, "", time.Now(), time.Now())
	require.NoError(t, err)
	return role
}

func TestAssignmentHandler_GetOverview(t *testing.T) {
	svc := &mockAssignmentService{
		OverviewFunc: func(ctx context.Context) (*apprbac.Overview, error) {
			return &apprbac.Overview{
				Roles:       []*rbac.Role{testRole(t, "r1", "Viewer")},
				Permissions: []*rbac.Permission{testPermission(t, "p1", "read:users")},
				Assignments: []rbac.RolePermission{{
					RoleID:         "r1",
					RoleName:       "Viewer",
					PermissionID:   "p1",
					PermissionName: "read:users",
				}},
			}, nil
		},
	}
	h := NewAssignmentHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/assignments", nil)
	h.GetOverview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var overview OverviewResponse
	require.NoError(t, json.Unmarshal(resp.Data, &overview))
	require.Len(t, overview.Assignments, 1)
	assert.Equal(t, "Viewer", overview.Assignments[0].RoleName)
	assert.Equal(t, "read:users", overview.Assignments[0].PermissionName)
}

func TestAssignmentHandler_ReplaceRolePermissions(t *testing.T) {
	t.Run("valid replace responds with the new set", func(t *testing.T) {
		var committed []string
		svc := &mockAssignmentService{
			ReplaceFunc: func(ctx context.Context, roleID string, permissionIDs []string) error {
				committed = permissionIDs
				return nil
			},
			PermissionsForFunc: func(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
				return []*rbac.Permission{testPermission(t, "p1", "read:users")}, nil
			},
		}
		h := NewAssignmentHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/roles/r1/permissions", ReplacePermissionsRequest{
			PermissionIDs: []string{"p1"},
		})
		testutil.SetURLParam(c, "id", "r1")
		h.ReplaceRolePermissions(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"p1"}, committed)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var perms []PermissionResponse
		require.NoError(t, json.Unmarshal(resp.Data, &perms))
		require.Len(t, perms, 1)
		assert.Equal(t, "read:users", perms[0].Name)
	})

	t.Run("empty selection maps to 400", func(t *testing.T) {
		svc := &mockAssignmentService{
			ReplaceFunc: func(ctx context.Context, roleID string, permissionIDs []string) error {
				return errors.NewValidationError("at least one permission must be selected")
			},
		}
		h := NewAssignmentHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/roles/r1/permissions", ReplacePermissionsRequest{
			PermissionIDs: []string{},
		})
		testutil.SetURLParam(c, "id", "r1")
		h.ReplaceRolePermissions(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown role maps to 404", func(t *testing.T) {
		svc := &mockAssignmentService{
			ReplaceFunc: func(ctx context.Context, roleID string, permissionIDs []string) error {
				return errors.NewNotFoundError("role not found")
			},
		}
		h := NewAssignmentHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/roles/ghost/permissions", ReplacePermissionsRequest{
			PermissionIDs: []string{"p1"},
		})
		testutil.SetURLParam(c, "id", "ghost")
		h.ReplaceRolePermissions(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssignmentHandler_RemoveRolePermission(t *testing.T) {
	removed := false
	svc := &mockAssignmentService{
		RemoveFunc: func(ctx context.Context, roleID, permissionID string) error {
			removed = true
			assert.Equal(t, "r1", roleID)
			assert.Equal(t, "p1", permissionID)
			return nil
		},
		PermissionsForFunc: func(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
			return []*rbac.Permission{}, nil
		},
	}
	h := NewAssignmentHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/roles/r1/permissions/p1", nil)
	testutil.SetURLParam(c, "id", "r1")
	testutil.SetURLParam(c, "permissionID", "p1")
	h.RemoveRolePermission(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, removed)
}

func TestAssignmentHandler_GetRolePermissions(t *testing.T) {
	svc := &mockAssignmentService{
		PermissionsForFunc: func(ctx context.Context, roleID string) ([]*rbac.Permission, error) {
			return []*rbac.Permission{
				testPermission(t, "p1", "read:roles"),
				testPermission(t, "p2", "read:users"),
			}, nil
		},
	}
	h := NewAssignmentHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/roles/r1/permissions", nil)
	testutil.SetURLParam(c, "id", "r1")
	h.GetRolePermissions(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var perms []PermissionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &perms))
	assert.Len(t, perms, 2)
}
