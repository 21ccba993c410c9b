package models

import (
	"time"

	"github.com/accesskit/accesskit/internal/shared/constants"
)

// RolePermissionModel is a pure junction row. The composite primary key and
// the cascading foreign keys are the invariants: no duplicate pair, and
// deleting either parent removes the row.
type RolePermissionModel struct {
	RoleID       string `gorm:"primaryKey;size:36"`
	PermissionID string `gorm:"primaryKey;size:36"`
	CreatedAt    time.Time

	Role       RoleModel       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	Permission PermissionModel `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE"`
}

func (RolePermissionModel) TableName() string {
	return constants.TableRolePermissions
}

// UserRoleModel links an external account to a role. The account side has no
// parent table in this service, so only the role side cascades here; the
// account cascade is enforced by the identity store's schema.
type UserRoleModel struct {
	UserID    string `gorm:"primaryKey;size:36"`
	RoleID    string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time

	Role RoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (UserRoleModel) TableName() string {
	return constants.TableUserRoles
}
