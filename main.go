// File: /main.go
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"drivecalc-api/config"
	"drivecalc-api/database"
	"drivecalc-api/jobs"
	"drivecalc-api/middleware"
	"drivecalc-api/routes"
	"drivecalc-api/services"
)

func main() {
	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()
	cfg := config.Load()

	logger := initLogger(cfg.Debug)
	defer logger.Sync()

	logger.Info("Starting DriveCalc API", zap.String("port", cfg.Port))

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg, logger)

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Weekly earnings report emails
	if cfg.WeeklyReportEnabled {
		reportJob := jobs.NewWeeklyReportJob(db, emailService, logger, time.Hour)
		reportJob.Start()
		defer reportJob.Stop()
	}

	logger.Info("Listening", zap.String("addr", ":"+cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func initLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
