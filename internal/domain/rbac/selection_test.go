package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_SeedsFromPersistedSet(t *testing.T) {
	sel := NewSelection("role-1", []string{"perm-a", "perm-b"})

	assert.Equal(t, "role-1", sel.RoleID())
	assert.True(t, sel.Has("perm-a"))
	assert.True(t, sel.Has("perm-b"))
	assert.False(t, sel.Has("perm-c"))
	assert.Equal(t, 2, sel.Count())
}

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection("role-1", []string{"perm-a"})

	sel.Toggle("perm-b", true)
	assert.True(t, sel.Has("perm-b"))

	sel.Toggle("perm-a", false)
	assert.False(t, sel.Has("perm-a"))

	// toggling an absent ID off is harmless
	sel.Toggle("perm-x", false)
	assert.Equal(t, []string{"perm-b"}, sel.IDs())
}

func TestSelection_ToggleIsIdempotent(t *testing.T) {
	sel := NewSelection("role-1", nil)

	sel.Toggle("perm-a", true)
	sel.Toggle("perm-a", true)
	assert.Equal(t, 1, sel.Count())
}

func TestSelection_IDsAreSorted(t *testing.T) {
	sel := NewSelection("role-1", []string{"c", "a", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())
}

func TestSelection_Empty(t *testing.T) {
	sel := NewSelection("role-1", nil)
	assert.True(t, sel.IsEmpty())
	assert.Empty(t, sel.IDs())

	sel.Toggle("perm-a", true)
	assert.False(t, sel.IsEmpty())
}

func TestPermissionsFor(t *testing.T) {
	rows := []RolePermission{
		{RoleID: "r1", PermissionID: "p1"},
		{RoleID: "r2", PermissionID: "p2"},
		{RoleID: "r1", PermissionID: "p3"},
	}

	assert.ElementsMatch(t, []string{"p1", "p3"}, PermissionsFor(rows, "r1"))
	assert.ElementsMatch(t, []string{"p2"}, PermissionsFor(rows, "r2"))
	assert.Empty(t, PermissionsFor(rows, "r3"))
}
