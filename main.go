package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cravespot/cravespot-api/config"
	"github.com/cravespot/cravespot-api/database"
	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/routes"
	"github.com/cravespot/cravespot-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Tokens signed with a missing secret would be forgeable.
	if config.JWTSecret() == "" {
		log.Fatalln("❌ ACCESS_TOKEN_SECRET is not set")
	}

	// Init persistence
	stores := initStores()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// Setup routes
	routes.SetupRoutes(r, stores)

	// Start server
	port := config.Port()
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStores builds the persistence layer for the configured driver.
func initStores() *store.Stores {
	switch config.StoreDriver() {
	case "memory":
		log.Println("⚠️ Using in-memory store; data will not survive a restart")
		return store.NewMemoryStores()
	default:
		client, err := database.Connect(config.MongoURI())
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return store.NewMongoStores(client, client.Database(config.MongoDB()))
	}
}
