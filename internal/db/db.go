// Package db opens the generation history database.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pgen-dev/pgen/internal/config"
	"github.com/pgen-dev/pgen/internal/db/dsn"
	"github.com/pgen-dev/pgen/internal/db/models"
	"github.com/pgen-dev/pgen/internal/logger/adapter/stdlogger"
)

// Open connects to the history database and migrates its schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn.Create(cfg)), &gorm.Config{
		Logger: gormlogger.New(stdlogger.New(), gormlogger.Config{
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open history database")
	}

	if err = db.AutoMigrate(&models.Generation{}); err != nil {
		if cerr := Close(db); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close history database")
		}

		return nil, errors.Wrap(err, "failed to migrate history database")
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to access history connection")
	}

	return errors.Wrap(sqlDB.Close(), "failed to close history database")
}
