package initializers

import (
	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/logger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectToDB() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.App.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Msg("Connected to database")
}
