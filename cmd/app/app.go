package main

import (
	"os"

	"github.com/AVTech-ve/ecommerce-backend/internal/app"
	config "github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
