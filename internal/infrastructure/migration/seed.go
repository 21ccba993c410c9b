package migration

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/accesskit/accesskit/internal/infrastructure/persistence/models"
	"github.com/accesskit/accesskit/internal/shared/logger"
)

var seedPermissions = map[string]string{
	"read:users":         "View user accounts",
	"write:users":        "Create and modify user accounts",
	"delete:users":       "Remove user accounts",
	"read:roles":         "View roles",
	"write:roles":        "Create and modify roles",
	"delete:roles":       "Remove roles",
	"read:permissions":   "View permissions",
	"write:permissions":  "Create and modify permissions",
	"delete:permissions": "Remove permissions",
}

var seedRoles = map[string]string{
	"Administrator":  "Full access to all administrative functions",
	"Content Editor": "Manages content and user-facing data",
	"Support Agent":  "Read access for customer support workflows",
	"Viewer":         "Read-only access to the dashboard",
}

// Seed inserts the baseline permissions and roles. Idempotent: rows are
// matched by name, existing rows are left untouched. Used in development
// where AutoMigrate owns the schema; the SQL scripts seed everywhere else.
func Seed(db *gorm.DB) error {
	log := logger.NewLogger().With("component", "migration.seed")

	for name, description := range seedPermissions {
		perm := models.PermissionModel{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
		}
		result := db.Where("name = ?", name).FirstOrCreate(&perm)
		if result.Error != nil {
			return fmt.Errorf("failed to seed permission %s: %w", name, result.Error)
		}
	}

	for name, description := range seedRoles {
		role := models.RoleModel{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
		}
		result := db.Where("name = ?", name).FirstOrCreate(&role)
		if result.Error != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, result.Error)
		}
	}

	log.Infow("seed data ensured",
		"permissions", len(seedPermissions),
		"roles", len(seedRoles))
	return nil
}
