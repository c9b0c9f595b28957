// Package db provides database connectivity and migrations
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelierhq/atelier/internal/db/models"
)

// DefaultPath is the default location of the SQLite database file.
const DefaultPath = "atelier.db"

// Options represents database connection configuration options
type Options struct {
	// Path is the SQLite database file, or an in-memory DSN.
	Path     string
	LogLevel logger.LogLevel
}

// New opens the SQLite database at the given path and runs migrations.
// One connection handle is opened per process and shared by all services.
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)

	// Custom logger so record-not-found lookups do not spam the output
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
		},
	)

	gdb, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", opts.Path, err)
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Client{},
		&models.JobType{},
		&models.Job{},
		&models.Payment{},
		&models.Attachment{},
		&models.Config{},
	)
}

func setDefaults(opts Options) Options {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	return opts
}
