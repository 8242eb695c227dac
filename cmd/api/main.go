package main

import (
	_ "liquiverde_bff/docs"
	"liquiverde_bff/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LiquiVerde Shopping BFF API
// @version         1.0
// @description     Backend-for-frontend of the sustainable shopping assistant: lists, budget tracking, optimizer and interactive substitution reviews.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
