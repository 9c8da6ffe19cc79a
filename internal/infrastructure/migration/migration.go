// Package migration applies the database schema via gorm AutoMigrate.
// The schema is small and additive; versioned migration scripts can take
// over if a destructive change ever becomes necessary.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"streamdesk/internal/infrastructure/persistence/models"
	"streamdesk/internal/shared/logger"
)

// Manager handles database schema migration.
type Manager struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewManager(db *gorm.DB, log logger.Interface) *Manager {
	return &Manager{db: db, logger: log.Named("migration")}
}

// AllModels lists every persisted model in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.BroadcastModel{},
	}
}

// Migrate applies the schema for every registered model.
func (m *Manager) Migrate() error {
	models := AllModels()
	m.logger.Infow("starting database migration", "models_count", len(models))

	if err := m.db.AutoMigrate(models...); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Infow("database migration completed")
	return nil
}
