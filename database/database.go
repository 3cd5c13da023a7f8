// File: /database/database.go
package database

import (
	"errors"
	"fmt"
	"log/slog"

	"comments-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens a connection for the given driver ("mysql" or "sqlite").
func Initialize(driver, databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(databaseURL)
	case "sqlite":
		dialector = sqlite.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	addCustomIndexes(db)

	return nil
}

// addCustomIndexes is best effort; a missing index slows listing but never breaks it.
func addCustomIndexes(db *gorm.DB) {
	if db.Dialector.Name() == "mysql" {
		// MySQL has no CREATE INDEX IF NOT EXISTS.
		if !db.Migrator().HasIndex(&models.Comment{}, "idx_comments_user_created") {
			if err := db.Exec("CREATE INDEX idx_comments_user_created ON comments(user_id, created_at)").Error; err != nil {
				slog.Warn("could not create index", "index", "idx_comments_user_created", "error", err)
			}
		}
		return
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_user_created ON comments(user_id, created_at)").Error; err != nil {
		slog.Warn("could not create index", "index", "idx_comments_user_created", "error", err)
	}
}

// SeedData creates two development users when the users table is empty.
// Both log in with the password "Passw0rd!".
func SeedData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	if userCount > 0 {
		slog.Info("database already has data, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	testUsers := []models.User{
		{
			ID:        "3f1c2a9e-6f1b-4f7e-9a51-0c8d7f2b1e01",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  string(hash),
		},
		{
			ID:        "3f1c2a9e-6f1b-4f7e-9a51-0c8d7f2b1e02",
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
			Password:  string(hash),
		},
	}

	var errs []error
	for i := range testUsers {
		if err := db.Create(&testUsers[i]).Error; err != nil {
			errs = append(errs, fmt.Errorf("create seed user %s: %w", testUsers[i].Email, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	slog.Info("database seeded with test users", "count", len(testUsers))
	return nil
}
