package rbac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermission(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		p, err := NewPermission("read:users", "allows reading users")
		require.NoError(t, err)
		assert.Empty(t, p.ID())
		assert.Equal(t, "read:users", p.Name())
		assert.Equal(t, "allows reading users", p.Description())
		assert.Equal(t, "read", p.Action())
		assert.Equal(t, "users", p.Resource())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewPermission("", "")
		assert.Error(t, err)
	})

	t.Run("name without separator rejected", func(t *testing.T) {
		_, err := NewPermission("readusers", "")
		assert.Error(t, err)
	})

	t.Run("uppercase rejected", func(t *testing.T) {
		_, err := NewPermission("Read:Users", "")
		assert.Error(t, err)
	})
}

func TestPermission_SetID(t *testing.T) {
	p, err := NewPermission("read:users", "")
	require.NoError(t, err)

	require.NoError(t, p.SetID("11111111-1111-1111-1111-111111111111"))
	assert.Error(t, p.SetID("22222222-2222-2222-2222-222222222222"), "ID can only be set once")
}

func TestPermission_Rename(t *testing.T) {
	p, err := NewPermission("read:users", "")
	require.NoError(t, err)
	before := p.UpdatedAt()

	require.NoError(t, p.Rename("write:users"))
	assert.Equal(t, "write:users", p.Name())
	assert.False(t, p.UpdatedAt().Before(before))

	assert.Error(t, p.Rename("not a name"))
}

func TestReconstructPermission(t *testing.T) {
	now := time.Now()

	p, err := ReconstructPermission("id-1", "read:users", "desc", now, now)
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID())

	_, err = ReconstructPermission("", "read:users", "desc", now, now)
	assert.Error(t, err)
}

func TestNewRole(t *testing.T) {
	r, err := NewRole("Administrator", "full access")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", r.Name())

	_, err = NewRole("", "")
	assert.Error(t, err)
}
