package initializers

import (
	"github.com/Luxera/luxera-api/logger"
	"github.com/Luxera/luxera-api/models"
)

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database synced successfully")
}
