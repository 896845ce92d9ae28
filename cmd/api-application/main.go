package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/omxqn/api-application/internal/app"
	"github.com/omxqn/api-application/internal/config"
	"github.com/omxqn/api-application/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	if err := app.Run(cfg, zl); err != nil {
		zl.Sugar().Fatalf("app: %v", err)
	}
}
