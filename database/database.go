// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-traits-backend/config" // Project config
	"go-traits-backend/models" // Models and schema registry

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
	"gorm.io/gorm/logger"        // GORM SQL logger
)

var DB *gorm.DB // Global variable to hold the database connection used by the HTTP handlers

// Open opens the SQLite file at path with foreign keys enforced and
// migrates every model in schema.
func Open(path string, schema models.Schema) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// Create tables if needed
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}

func Connect(dbPath string, schema models.Schema) error { // Connect opens the database and runs migrations
	db, err := Open(dbPath, schema)
	if err != nil { // If error, return it
		return err
	}
	DB = db

	// Create default admin user if configured
	return createDefaultAdmin()
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dsn turns a plain file path into a go-sqlite3 DSN that enables foreign keys.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// createDefaultAdmin - Creates a default admin user if configured and none exists
// This uses environment variables for security instead of hardcoded credentials
func createDefaultAdmin() error {
	cfg := config.Load() // Load configuration

	// Only create admin if explicitly configured
	if !cfg.CreateAdmin {
		return nil
	}
	if cfg.AdminPassword == "" {
		return errors.New("CREATE_ADMIN is set but ADMIN_PASSWORD is empty")
	}

	// Check if any admin user exists
	var count int64
	if err := DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminUsername,
		Password: string(hash),
		Role:     "admin",
	}
	return DB.Create(&admin).Error
}
