// Package storage persists quote and inquiry aggregates with GORM.
// It implements ports.Store over SQLite (local development, tests) and
// PostgreSQL (production), mapping database failures to domain errors.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds connection settings for Open.
type Config struct {
	// Driver selects the database backend: "sqlite" or "postgres".
	Driver string

	// DSN is the driver-specific connection string. For SQLite this is
	// a file path or ":memory:".
	DSN string

	// MaxOpenConns bounds the connection pool. Zero keeps the driver
	// default.
	MaxOpenConns int

	// ConnMaxLifetime recycles pooled connections. Zero keeps them
	// open indefinitely.
	ConnMaxLifetime time.Duration
}

// Open connects to the configured database and runs schema migration.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Dialect errors become gorm sentinel errors (gorm.ErrDuplicatedKey)
		// so repositories can map them to domain errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if cfg.MaxOpenConns > 0 || cfg.ConnMaxLifetime > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("accessing connection pool: %w", err)
		}

		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}

		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all persisted aggregates.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&inquiryRecord{},
		&noteRecord{},
		&quoteRecord{},
		&lineItemRecord{},
		&paymentRecord{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// HealthCheck reports database connectivity for the health registry.
type HealthCheck struct {
	db *gorm.DB
}

// NewHealthCheck wraps a database handle as a health checker.
func NewHealthCheck(db *gorm.DB) *HealthCheck {
	return &HealthCheck{db: db}
}

// Name identifies this check in health responses.
func (h *HealthCheck) Name() string {
	return "database"
}

// Check pings the database.
func (h *HealthCheck) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}

	return sqlDB.PingContext(ctx)
}
