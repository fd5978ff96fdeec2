package main

import (
	_ "pharma_fieldops/docs"
	"pharma_fieldops/internal/adapter/http/routes"
	"pharma_fieldops/internal/infrastructure/config"
	"pharma_fieldops/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pharma Field Ops API
// @version         1.0
// @description     Field-force console backend: visits dashboard, evaluations, pharmacy collections and the work calendar.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	config.LoadConfig()
	log := logger.Initialize(config.AppConfig.IsProduction(), config.AppConfig.LogLevel)
	defer func() { _ = log.Sync() }()

	routes.Run(config.AppConfig, log)
}
