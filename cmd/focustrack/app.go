package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"focustrack/internal/config"
	"focustrack/internal/logger"
	"focustrack/internal/repository"
)

var configPath string

// bootstrap loads config, builds the logger and opens the database.
func bootstrap() (*config.Config, *logrus.Entry, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	log := logger.New("focustrack", cfg.Log.Level, nil)

	db, err := repository.NewDB(cfg.DB, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("db: %w", err)
	}
	if err := repository.Migrate(db); err != nil {
		closeDB(db, log)
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log *logrus.Entry) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("close db")
	}
}
