package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
)

type mockRepository struct {
	CreateFunc      func(ctx context.Context, p *profile.Profile) error
	GetByUserIDFunc func(ctx context.Context, userID string) (*profile.Profile, error)
	ListFunc        func(ctx context.Context) ([]*profile.Profile, error)
	UpdateFunc      func(ctx context.Context, p *profile.Profile) error
}

func (m *mockRepository) Create(ctx context.Context, p *profile.Profile) error {
	return m.CreateFunc(ctx, p)
}

func (m *mockRepository) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *mockRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	return m.ListFunc(ctx)
}

func (m *mockRepository) Update(ctx context.Context, p *profile.Profile) error {
	return m.UpdateFunc(ctx, p)
}

func reconstruct(t *testing.T, userID, email, fullName string) *profile.Profile {
	t.Helper()
	p, err := profile.ReconstructProfile("prof-1", userID, email, fullName, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestService_Ensure(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the existing profile without creating", func(t *testing.T) {
		created := false
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				return reconstruct(t, userID, "a@example.com", "Alice"), nil
			},
			CreateFunc: func(ctx context.Context, p *profile.Profile) error {
				created = true
				return nil
			},
		}
		svc := NewService(repo, logger.NewLogger())

		p, err := svc.Ensure(ctx, AccountClaims{UserID: "user-1", Email: "a@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.FullName())
		assert.False(t, created)
	})

	t.Run("provisions on first sight with email fallback", func(t *testing.T) {
		var stored *profile.Profile
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, p *profile.Profile) error {
				stored = p
				return nil
			},
		}
		svc := NewService(repo, logger.NewLogger())

		p, err := svc.Ensure(ctx, AccountClaims{UserID: "user-1", Email: "a@example.com", Issuer: "https://idp.example.com"})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "a@example.com", p.FullName(), "display name falls back to email")
		assert.JSONEq(t, `{"issuer":"https://idp.example.com"}`, string(p.Metadata()))
	})

	t.Run("losing the provisioning race reads the winner's row", func(t *testing.T) {
		calls := 0
		winner := reconstruct(t, "user-1", "a@example.com", "Alice")
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				calls++
				if calls == 1 {
					return nil, nil
				}
				return winner, nil
			},
			CreateFunc: func(ctx context.Context, p *profile.Profile) error {
				return errors.NewConflictError("profile already exists for user")
			},
		}
		svc := NewService(repo, logger.NewLogger())

		p, err := svc.Ensure(ctx, AccountClaims{UserID: "user-1", Email: "a@example.com"})
		require.NoError(t, err)
		assert.Same(t, winner, p)
	})

	t.Run("missing user ID is rejected", func(t *testing.T) {
		svc := NewService(&mockRepository{}, logger.NewLogger())
		_, err := svc.Ensure(ctx, AccountClaims{Email: "a@example.com"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestService_UpdateFullName(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the caller's own profile", func(t *testing.T) {
		updated := false
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				return reconstruct(t, userID, "a@example.com", "Alice"), nil
			},
			UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
				updated = true
				return nil
			},
		}
		svc := NewService(repo, logger.NewLogger())

		p, err := svc.UpdateFullName(ctx, "user-1", "Alice Admin")
		require.NoError(t, err)
		assert.Equal(t, "Alice Admin", p.FullName())
		assert.True(t, updated)
	})

	t.Run("empty name is a validation error", func(t *testing.T) {
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				return reconstruct(t, userID, "a@example.com", "Alice"), nil
			},
		}
		svc := NewService(repo, logger.NewLogger())

		_, err := svc.UpdateFullName(ctx, "user-1", "   ")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("no profile is not found", func(t *testing.T) {
		repo := &mockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
				return nil, nil
			},
		}
		svc := NewService(repo, logger.NewLogger())

		_, err := svc.UpdateFullName(ctx, "user-1", "Alice")
		assert.True(t, errors.IsNotFoundError(err))
	})
}
