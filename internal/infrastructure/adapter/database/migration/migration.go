package migration

import (
	"context"
	"errors"

	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/database"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// Manager applies the schema idempotently at process startup, before the
// first request is served. Transient connection errors during the apply are
// retried; schema failures are not.
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema to the current version
func (m *Manager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.CurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	apply := func() error {
		if err := m.autoMigrateModels(ctx); err != nil {
			return err
		}
		return m.createIndexes(ctx)
	}
	if err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), m.logger, apply); err != nil {
		m.logger.Error("Failed to apply schema", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Users and expenses schema"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// CurrentVersion gets the most recently applied migration version
func (m *Manager) CurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // Fresh database
		}
		return "", result.Error
	}
	return version.Version, nil
}

// setVersion records a newly applied migration version
func (m *Manager) setVersion(ctx context.Context, version string, details string) error {
	record := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&record).Error
}

// autoMigrateModels applies the table definitions
func (m *Manager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	// Users first: expenses carry the foreign key
	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Expense{},
	)
}

// createIndexes creates the constraint-bearing indexes. AutoMigrate creates
// them from the model tags as well; the explicit statements keep databases
// migrated by earlier versions consistent.
func (m *Manager) createIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	// Unique index enforcing email uniqueness under concurrent writes
	if err := m.db.WithContext(ctx).Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_unique ON users (email)",
	).Error; err != nil {
		return err
	}

	// Owner lookup index for expense listing and cascade deletes
	return m.db.WithContext(ctx).Exec(
		"CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses (user_id)",
	).Error
}
