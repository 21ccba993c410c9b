package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accesskit/accesskit/internal/domain/profile"
	"github.com/accesskit/accesskit/internal/infrastructure/persistence/models"
	"github.com/accesskit/accesskit/internal/shared/errors"
)

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) profile.Repository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, p *profile.Profile) error {
	model := &models.ProfileModel{
		ID:       uuid.NewString(),
		UserID:   p.UserID(),
		Email:    p.Email(),
		FullName: p.FullName(),
		Metadata: datatypes.JSON(p.Metadata()),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("profile already exists for user", p.UserID())
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProfileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profileModelToEntity(&model)
}

func (r *ProfileRepositoryImpl) List(ctx context.Context) ([]*profile.Profile, error) {
	var profileModels []*models.ProfileModel
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, 0, len(profileModels))
	for _, model := range profileModels {
		p, err := profileModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, p *profile.Profile) error {
	result := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ? AND user_id = ?", p.ID(), p.UserID()).
		Updates(map[string]interface{}{
			"full_name":  p.FullName(),
			"updated_at": p.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("profile not found")
	}
	return nil
}

func profileModelToEntity(model *models.ProfileModel) (*profile.Profile, error) {
	return profile.ReconstructProfile(
		model.ID,
		model.UserID,
		model.Email,
		model.FullName,
		[]byte(model.Metadata),
		model.CreatedAt,
		model.UpdatedAt,
	)
}
