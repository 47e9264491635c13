// Package store opens the database behind a booking session. The database
// lives in memory only and is gone once the process exits.
package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/config"
	"github.com/beesaferoot/hotel-booking/internal/logging"
	"github.com/beesaferoot/hotel-booking/internal/migration"
)

const memoryDSN = ":memory:"

// Open creates an in-memory database and applies the session migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{
		Logger: logging.GormLogger(cfg.Debug),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get session database handle: %w", err)
	}
	// Every connection to ":memory:" is a separate database, so the pool
	// must hold exactly one connection for the whole session.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := Migrator(db, cfg).Up(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrator returns the migrator for a session built from cfg.
func Migrator(db *gorm.DB, cfg *config.Config) *migration.Migrator {
	return migration.NewMigrator(db, migration.Session(cfg.SeedCatalog)...)
}

// Close releases the session database.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
