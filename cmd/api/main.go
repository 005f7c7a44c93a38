package main

//go:generate swag init -d ../.. -g cmd/api/main.go -o ../../docs

import (
	_ "payment_factory/docs"
	"payment_factory/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway Factory API
// @version         1.0
// @description     Simulated PagSeguro, MercadoPago and Stripe payments built from one gateway family per request.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
