package main

import (
	"context"
	"log"
	"os"
	"time"

	"train-console-backend/internal/api/routes"
	"train-console-backend/internal/config"
	"train-console-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	_ "train-console-backend/docs" // This is needed for swag
)

// orphanedIntentAge is how long a billing intent may stay pending before the
// recovery sweep reconciles it
const orphanedIntentAge = 10 * time.Minute

//	@title			Train Console Backend API
//	@version		1.0
//	@description	This is the backend API for the training console, providing endpoints for resolving organizations, registering clusters, managing billing and launching training jobs.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7011
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

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

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router and services
	router, billingService := routes.SetupRoutes(db, cfg)

	// Schedule the billing-intent recovery sweep. Pending intents older than
	// the threshold are finalized or compensated depending on whether their
	// job ever materialized.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		reconciled, err := billingService.SweepOrphanedIntents(ctx, orphanedIntentAge)
		if err != nil {
			logrus.Errorf("billing intent sweep failed: %v", err)
			return
		}
		if reconciled > 0 {
			logrus.Infof("billing intent sweep reconciled %d intent(s)", reconciled)
		}
	}); err != nil {
		logrus.Fatal("Failed to schedule billing intent sweep:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7011"
	}

	logrus.Infof("Starting server on port %s", port)
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
