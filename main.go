// @title QuizDeck API
// @version 1.0
// @description Backend server for the QuizDeck quiz platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"quizdeck_backend/internal/app"
	"quizdeck_backend/internal/config"
	"quizdeck_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
