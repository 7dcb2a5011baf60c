package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"feffi-backend/internal/config"
	"feffi-backend/internal/domain/caisse"
	"feffi-backend/internal/domain/hierarchy"
	"feffi-backend/internal/domain/mandataire"
	"feffi-backend/internal/domain/rapport"
	"feffi-backend/internal/domain/user"
)

// Open picks the dialector from config and connects. TranslateError lets
// duplicate-key violations surface as gorm.ErrDuplicatedKey on both drivers.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenGormWithDialector(sqlite.Open(cfg.SQLitePath))
	case "mysql":
		return OpenGormWithDialector(mysql.Open(cfg.MySQLDSN()))
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates the eight tables idempotently on startup, matching the
// original CREATE TABLE IF NOT EXISTS bootstrap.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&hierarchy.Dren{},
		&hierarchy.Cisco{},
		&hierarchy.Zap{},
		&hierarchy.Etablissement{},
		&mandataire.Mandataire{},
		&caisse.Caisse{},
		&rapport.Rapport{},
	)
}
