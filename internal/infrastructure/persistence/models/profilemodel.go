package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/accesskit/accesskit/internal/shared/constants"
)

type ProfileModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	UserID    string         `gorm:"uniqueIndex;not null;size:36"`
	Email     string         `gorm:"not null;size:255"`
	FullName  string         `gorm:"size:255"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
