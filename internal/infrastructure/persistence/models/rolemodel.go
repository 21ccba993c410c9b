package models

import (
	"time"

	"github.com/accesskit/accesskit/internal/shared/constants"
)

type RoleModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
