package database

import (
	"log"

	"hrbot/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection initializes a connection pool using GORM. An empty dsn falls
// back to a local SQLite file for development.
func NewConnection(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		log.Println("No database DSN configured, using local SQLite")
		db, err = gorm.Open(sqlite.Open("hrbot.db"), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Migrate creates or updates the core tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Session{},
		&model.Employee{},
		&model.Message{},
		&model.MenuItem{},
		&model.Setting{},
	)
}
