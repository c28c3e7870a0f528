package main

import (
	"log"
	"net/http"
	"os"

	"quickmart-api/config"
	"quickmart-api/handlers"
	"quickmart-api/routes"
	"quickmart-api/session"
	"quickmart-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Local key-value cache (saved locations, recent searches, addresses)
	cache, err := storage.Open(config.CachePath())
	if err != nil {
		log.Fatal("Failed to open local cache:", err)
	}

	// One store set per login session, torn down at logout
	sessions := session.NewManager()
	h := handlers.New(sessions, cache)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for app integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "QuickMart Storefront API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🛒 Welcome to the QuickMart Storefront API",
			"docs":    "/api/order-status-flow",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	port := config.Port()
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
