package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/internal/domain/rbac"
	"github.com/accesskit/accesskit/internal/interfaces/http/handlers/testutil"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

type mockPermissionService struct {
	ListFunc   func(ctx context.Context) ([]*rbac.Permission, error)
	GetFunc    func(ctx context.Context, id string) (*rbac.Permission, error)
	CreateFunc func(ctx context.Context, name, description string) (*rbac.Permission, error)
	UpdateFunc func(ctx context.Context, id, name, description string) (*rbac.Permission, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockPermissionService) List(ctx context.Context) ([]*rbac.Permission, error) {
	return m.ListFunc(ctx)
}

func (m *mockPermissionService) Get(ctx context.Context, id string) (*rbac.Permission, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockPermissionService) Create(ctx context.Context, name, description string) (*rbac.Permission, error) {
	return m.CreateFunc(ctx, name, description)
}

func (m *mockPermissionService) Update(ctx context.Context, id, name, description string) (*rbac.Permission, error) {
	return m.UpdateFunc(ctx, id, name, description)
}

func (m *mockPermissionService) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func testPermission(t *testing.T, id, name string) *rbac.Permission {
	t.Helper()
	perm, err := rbac.ReconstructPermission(id, name, "", time.Now(), time.Now())
	require.NoError(t, err)
	return perm
}

func TestPermissionHandler_ListPermissions(t *testing.T) {
	svc := &mockPermissionService{
		ListFunc: func(ctx context.Context) ([]*rbac.Permission, error) {
			return []*rbac.Permission{
				testPermission(t, "p1", "delete:users"),
				testPermission(t, "p2", "read:users"),
			}, nil
		},
	}
	h := NewPermissionHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/permissions", nil)
	h.ListPermissions(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var perms []PermissionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &perms))
	require.Len(t, perms, 2)
	assert.Equal(t, "delete:users", perms[0].Name)
}

func TestPermissionHandler_CreatePermission(t *testing.T) {
	t.Run("responds with the refreshed list", func(t *testing.T) {
		created := false
		svc := &mockPermissionService{
			CreateFunc: func(ctx context.Context, name, description string) (*rbac.Permission, error) {
				created = true
				return testPermission(t, "p3", name), nil
			},
			ListFunc: func(ctx context.Context) ([]*rbac.Permission, error) {
				return []*rbac.Permission{
					testPermission(t, "p1", "read:users"),
					testPermission(t, "p3", "write:users"),
				}, nil
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/permissions", CreatePermissionRequest{
			Name: "write:users",
		})
		h.CreatePermission(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, created)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var perms []PermissionResponse
		require.NoError(t, json.Unmarshal(resp.Data, &perms))
		assert.Len(t, perms, 2, "mutation response carries the full refreshed list")
	})

	t.Run("duplicate name maps to 409", func(t *testing.T) {
		svc := &mockPermissionService{
			CreateFunc: func(ctx context.Context, name, description string) (*rbac.Permission, error) {
				return nil, errors.NewConflictError("permission name already exists", name)
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/permissions", CreatePermissionRequest{
			Name: "read:users",
		})
		h.CreatePermission(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "conflict", resp.Error.Type)
	})

	t.Run("missing name is rejected by binding", func(t *testing.T) {
		svc := &mockPermissionService{}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/permissions", map[string]string{
			"description": "no name",
		})
		h.CreatePermission(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPermissionHandler_UpdatePermission(t *testing.T) {
	t.Run("silent no-op still refreshes", func(t *testing.T) {
		svc := &mockPermissionService{
			UpdateFunc: func(ctx context.Context, id, name, description string) (*rbac.Permission, error) {
				return nil, nil
			},
			ListFunc: func(ctx context.Context) ([]*rbac.Permission, error) {
				return []*rbac.Permission{testPermission(t, "p1", "read:users")}, nil
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPatch, "/permissions/ghost", UpdatePermissionRequest{
			Name: "read:users",
		})
		testutil.SetURLParam(c, "id", "ghost")
		h.UpdatePermission(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		svc := &mockPermissionService{
			UpdateFunc: func(ctx context.Context, id, name, description string) (*rbac.Permission, error) {
				return nil, errors.NewValidationError("permission name must follow the action:resource convention")
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPatch, "/permissions/p1", UpdatePermissionRequest{
			Name: "Not A Permission",
		})
		testutil.SetURLParam(c, "id", "p1")
		h.UpdatePermission(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPermissionHandler_DeletePermission(t *testing.T) {
	t.Run("missing row maps to 404", func(t *testing.T) {
		svc := &mockPermissionService{
			DeleteFunc: func(ctx context.Context, id string) error {
				return errors.NewNotFoundError("permission not found")
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/permissions/ghost", nil)
		testutil.SetURLParam(c, "id", "ghost")
		h.DeletePermission(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete responds with the refreshed list", func(t *testing.T) {
		svc := &mockPermissionService{
			DeleteFunc: func(ctx context.Context, id string) error {
				return nil
			},
			ListFunc: func(ctx context.Context) ([]*rbac.Permission, error) {
				return []*rbac.Permission{}, nil
			},
		}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/permissions/p1", nil)
		testutil.SetURLParam(c, "id", "p1")
		h.DeletePermission(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var perms []PermissionResponse
		require.NoError(t, json.Unmarshal(resp.Data, &perms))
		assert.Empty(t, perms)
	})
}
