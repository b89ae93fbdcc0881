package initializers

import (
	"log"

	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/logger"
	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	if err := config.Load(); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logger.Init(config.App.Server.Environment)
}
