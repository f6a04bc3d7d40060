package main

import (
	_ "assistec/docs"
	"assistec/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AssisTec BFF API
// @version         1.0
// @description     Backend-for-frontend of the AssisTec repair-shop console: customers, service orders, stock, finance, backup, billing and WhatsApp over the shop REST backend.
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
