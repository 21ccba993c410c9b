package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

func TestProfileRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	p, err := profile.NewProfile("user-1", "admin@example.com", "", []byte(`{"provider":"oidc"}`))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEmpty(t, p.ID())
	assert.Equal(t, "admin@example.com", p.FullName(), "full name falls back to email")

	found, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "admin@example.com", found.Email())
	assert.JSONEq(t, `{"provider":"oidc"}`, string(found.Metadata()))
}

func TestProfileRepository_OneProfilePerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	p1, err := profile.NewProfile("user-1", "a@example.com", "A", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p1))

	p2, err := profile.NewProfile("user-1", "a@example.com", "A again", nil)
	require.NoError(t, err)
	err = repo.Create(ctx, p2)
	assert.True(t, errors.IsConflictError(err))
}

func TestProfileRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	p, err := profile.NewProfile("user-1", "a@example.com", "A", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.UpdateFullName("Alice Admin"))
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Admin", found.FullName())
}
