package database

import (
	"gorm.io/gorm"

	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/infrastructure/adapter/model"
)

// Migrate brings the schema up to date: player and settlement tables plus
// the indexes the hot paths rely on (login lookups and per-player history)
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(&model.Player{}, &model.Settlement{}); err != nil {
		logger.Error("Failed to migrate schema", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
