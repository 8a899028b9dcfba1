package relational

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenPostgres connects to PostgreSQL.
func OpenPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	cfg.TranslateError = true
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// OpenSQLite opens the database file at path, creating it if needed. SQLite
// allows one writer at a time, so the pool is held to a single connection and
// transactions queue instead of failing with SQLITE_BUSY.
func OpenSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	cfg.TranslateError = true
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
