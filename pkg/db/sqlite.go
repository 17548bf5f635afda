package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB provides database operations using an embedded SQLite file
type DB struct {
	database *gorm.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at dbPath and migrates its schema
func OpenSQLite(dbPath string, logger *zap.Logger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&Person{}, &Topic{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return &DB{database: database}, nil
}

// Close closes the underlying connection
func (d *DB) Close() error {
	sqlDB, err := d.database.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.Close()
}

func rotationUpdates(update RotationUpdate) map[string]any {
	updates := make(map[string]any)
	if update.PrayDay != nil {
		updates["pray_day"] = *update.PrayDay
	}
	if update.PrayMonths != nil {
		updates["pray_months"] = int(*update.PrayMonths)
	}
	return updates
}
