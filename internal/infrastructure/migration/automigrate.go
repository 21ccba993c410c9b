package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/accesskit/accesskit/internal/infrastructure/persistence/models"
	"github.com/accesskit/accesskit/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the model structs.
// Development only; versioned SQL scripts own the schema elsewhere.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PermissionModel{},
		&models.RoleModel{},
		&models.RolePermissionModel{},
		&models.UserRoleModel{},
		&models.ProfileModel{},
	}
}
