// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"

	"creditcall/internal/config"
	"creditcall/internal/repositories"
	"creditcall/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/stripe/stripe-go/v72/client"
)

func main() {
	config.LoadEnv()

	db, err := repositories.InitDB(repositories.DefaultDBConfig())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
	}()

	cacheSvc := repositories.InitCache()
	defer func() {
		if err := cacheSvc.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}()

	stripeKey := config.GetEnv("STRIPE_SECRET_KEY", "")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}
	stripeClient := &client.API{}
	stripeClient.Init(stripeKey, nil)

	app := fiber.New(fiber.Config{
		AppName: "creditcall",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Stripe-Signature, X-Webhook-Secret",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, cacheSvc, stripeClient)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
