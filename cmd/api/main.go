package main

import (
	"log"

	"github.com/docfill/docfill-go/config"
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/handlers"
	"github.com/docfill/docfill-go/middleware"
	"github.com/docfill/docfill-go/minio"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/routes"
	"github.com/docfill/docfill-go/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Initialize object storage
	minio.InitMinio()

	repos := repositories.New()
	svc := services.New(repos)
	h := handlers.New(svc)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
