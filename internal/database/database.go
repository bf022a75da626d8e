package database

import (
	"context"

	"github.com/ggorockee/cityexplorer/internal/config"
	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the long-lived store handle shared by every service.
type DB struct {
	*gorm.DB
}

func Connect(cfg *config.Config) (*DB, error) {
	logLevel := gormlogger.Silent
	if cfg.ServerEnv == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	return Wrap(db), nil
}

// Wrap registers the metrics plugin on an open gorm handle.
// Tests use it with an in-memory sqlite dialector.
func Wrap(db *gorm.DB) *DB {
	log := logger.GetLogger("database")

	// Register metrics plugin for Prometheus
	if err := db.Use(&MetricsPlugin{}); err != nil {
		log.Warnf("Failed to register metrics plugin: %v", err)
	}

	// Connection pool 설정
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		log.Debug("Database connection pool configured")
	}

	return &DB{db}
}

// Ping checks the underlying connection
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate runs AutoMigrate for the cache tables.
// Production schema is provisioned separately; this is for local development.
func Migrate(db *DB) error {
	return db.AutoMigrate(
		&models.Location{},
		&models.Forecast{},
		&models.Meetup{},
		&models.Review{},
		&models.Movie{},
	)
}
