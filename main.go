package main

import (
	"log"
	"net/http"
	"os"

	"pos-backend/config"
	"pos-backend/handlers"
	"pos-backend/middleware"
	"pos-backend/routes"
	"pos-backend/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database and handler wiring
	db := config.ConnectDB(cfg)
	h := handlers.New(store.NewMongo(db))

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for frontend integration
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Point of Sale API",
			"version": "1.0.0",
		})
	})

	// Static assets (item images etc.)
	r.Static("/files", cfg.AssetsDir)

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
