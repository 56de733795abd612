package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clinic-appointment-server/internal/cache"
	"clinic-appointment-server/internal/config"
	"clinic-appointment-server/internal/middleware"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/routes"
	"clinic-appointment-server/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Optional redis cache (disabled when REDIS_ADDR is empty)
	appCache, err := cache.New(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	// Seed the admin account on first start
	created, err := services.NewAdminService(db).Seed(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Error seeding admin account: %v", err)
	}
	if created {
		log.Printf("Admin user created: %s", cfg.AdminEmail)
	} else {
		log.Println("Admin user already exists.")
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, cfg, appCache)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
