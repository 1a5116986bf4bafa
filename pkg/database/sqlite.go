package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteConfig embedded database settings, used for local development and tests
type SQLiteConfig struct {
	ServiceName string
	DSN         string // file path or "file:name?mode=memory&cache=shared"
	LogLevel    string
}

// InitSQLite opens a single-connection SQLite database. SQLite serialises
// writers, so one connection avoids "database is locked" under concurrent
// request handlers.
func InitSQLite(config *SQLiteConfig) (*gorm.DB, error) {
	if config == nil || config.DSN == "" {
		return nil, fmt.Errorf("sqlite dsn is empty")
	}

	db, err := gorm.Open(sqlite.Open(config.DSN), &gorm.Config{
		Logger: getLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	zap.L().Info("sqlite opened",
		zap.String("service", serviceName(config.ServiceName)),
		zap.String("dsn", config.DSN),
	)
	return db, nil
}
