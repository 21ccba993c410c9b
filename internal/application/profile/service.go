package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/shared/errors"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// AccountClaims carries the identity fields extracted from a verified token.
type AccountClaims struct {
	UserID   string
	Email    string
	FullName string
	Issuer   string
}

// Service manages profile rows mirroring external user accounts.
type Service struct {
	profiles profile.Repository
	logger   logger.Interface
}

func NewService(profiles profile.Repository, logger logger.Interface) *Service {
	return &Service{
		profiles: profiles,
		logger:   logger,
	}
}

// Ensure returns the profile for an account, creating it on first sight.
// Provisioning is idempotent: a concurrent create losing the unique-index
// race falls back to reading the winner's row.
func (s *Service) Ensure(ctx context.Context, claims AccountClaims) (*profile.Profile, error) {
	if claims.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := s.profiles.GetByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	metadata, err := json.Marshal(map[string]string{"issuer": claims.Issuer})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile metadata: %w", err)
	}

	p, err := profile.NewProfile(claims.UserID, claims.Email, utils.SanitizeText(claims.FullName), metadata)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.IsConflictError(err) {
			return s.profiles.GetByUserID(ctx, claims.UserID)
		}
		return nil, err
	}

	s.logger.Infow("profile provisioned", "user_id", claims.UserID, "email", claims.Email)
	return p, nil
}

// Get returns the profile for a user account.
func (s *Service) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	if err := utils.ValidateID(userID); err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}
	return p, nil
}

// List returns all provisioned profiles ordered by email.
func (s *Service) List(ctx context.Context) ([]*profile.Profile, error) {
	return s.profiles.List(ctx)
}

// UpdateFullName changes the display name of the caller's own profile.
// ownerID must match the profile's user ID; the repository enforces the
// scope so a stale or forged profile ID cannot touch another row.
func (s *Service) UpdateFullName(ctx context.Context, ownerID, fullName string) (*profile.Profile, error) {
	if err := utils.ValidateID(ownerID); err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}

	if err := p.UpdateFullName(utils.SanitizeText(fullName)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Infow("profile updated", "user_id", ownerID)
	return p, nil
}
