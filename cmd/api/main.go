package main

import (
	"log"

	"midtrans_gateway/internal/adapter/http/routes"
	"midtrans_gateway/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Midtrans Payment Gateway API
// @version         1.0
// @description     Midtrans payment adapter (Snap checkout + IPN notifications) backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	routes.Run(cfg, logger)
}

func newLogger(environment string) *zap.Logger {
	if environment == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("failed to build logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
