package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db     *gorm.DB
	dbPath string
	once   sync.Once
)

// SetPath overrides the database file path before the first GetDB call.
func SetPath(path string) {
	dbPath = path
}

// GetDB returns the shared database handle, opening it on first use.
func GetDB() *gorm.DB {
	once.Do(func() {
		var err error
		db, err = initDB()
		if err != nil {
			zap.L().Fatal("failed to initialize database", zap.Error(err))
		}
	})
	return db
}

// initDB opens the SQLite database and runs migrations.
func initDB() (*gorm.DB, error) {
	path := getDBPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite database object: %w", err)
	}

	// SQLite supports a single write connection.
	// See https://github.com/glebarez/sqlite/issues/52
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	zap.L().Info("database initialized", zap.String("path", path))
	return gdb, nil
}

// getDBPath resolves the database file path. The environment variable
// wins over the configured path; the default is a local data dir.
func getDBPath() string {
	if p := os.Getenv("ALUMNICONNECT_DB_PATH"); p != "" {
		return p
	}
	if dbPath != "" {
		return dbPath
	}
	return "./data/alumniconnect.db"
}

// Close closes the database connection.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
