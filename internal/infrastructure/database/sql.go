package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
)

// OpenSQL opens a gorm connection for the postgres or sqlite storage driver.
func OpenSQL(cfg config.StorageConfig, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.StoragePostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.StorageSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("storage driver %q is not a SQL driver", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("component", "database").Str("driver", cfg.Driver).Msg("sql database connected")
	return db, nil
}
