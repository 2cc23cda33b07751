package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"dental-center-server/internal/auth"
	"dental-center-server/internal/config"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/routes"
	"dental-center-server/internal/seed"
	"dental-center-server/internal/storage"
)

func main() {
	// Load environment variables; a missing .env just means env-only config
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open the record store
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Error opening record store: %v", err)
	}

	// Seed demo data into slots that have never been written
	seed.Initialize(store)

	// Resolve the session gate before any routed content is served
	gate := auth.NewGate(repository.NewSessionRepository(store), func() string {
		return uuid.New().String()
	})
	gate.Resume()

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, store, gate)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
