package main

import (
	"log"

	_ "concessionaria_xpto/docs"
	"concessionaria_xpto/internal/adapter/http/routes"
	"concessionaria_xpto/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Proposal Service API
// @version         1.0
// @description     Vehicle sales proposals: aggregate reconciliation, status workflow and commercial approvals.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	l, err := logger.Init()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	routes.Run()
}
