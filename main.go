package main

import (
	"log"
	"net/http"
	"os"

	"bistro-chat-api/checkout"
	"bistro-chat-api/config"
	"bistro-chat-api/handlers"
	"bistro-chat-api/routes"
	"bistro-chat-api/session"
	"bistro-chat-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Profile store is the only persisted resource
	db := config.InitDB(config.DBPath())
	profiles, err := store.NewGormStore(db)
	if err != nil {
		log.Fatal("Failed to migrate profile store:", err)
	}

	sessions := session.NewRegistry()
	machine := checkout.NewMachine(profiles)
	h := handlers.New(sessions, machine, profiles)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
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
			"service": "Bengal Bistro Chat API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "🍔 Welcome to the Bengal Bistro conversational ordering API",
			"docs":      "/api/checkout/flow",
			"health":    "/health",
			"languages": []string{"en", "bn"},
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
