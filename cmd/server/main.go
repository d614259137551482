package main

import (
	"log"
	"os"

	"garden-backend/internal/api/routes"
	"garden-backend/internal/cache"
	"garden-backend/internal/config"
	"garden-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "garden-backend/docs" // This is needed for swag
)

//	@title			Garden Gallery API
//	@version		1.0
//	@description	Backend API for the garden project gallery: plant projects, compose fruit-on-shape stickers, and lay out the garden.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Optional Redis listing cache, disabled when REDIS_URL is empty
	projectCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis:", err)
	}
	defer projectCache.Close()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		SeedDemoData: cfg.SeedDemoData,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, projectCache)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "5000"
	}

	logrus.Infof("Garden is growing on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
