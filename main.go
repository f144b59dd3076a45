// Package main is the entry point for the Straddle Shift Config API
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/straddleshift/configapi/audit"
	"github.com/straddleshift/configapi/config"
	"github.com/straddleshift/configapi/database"
	"github.com/straddleshift/configapi/services"
	"github.com/straddleshift/configapi/shared/middleware"
	"github.com/straddleshift/configapi/shared/zaplogger"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	// Load .env if present, real env vars win
	_ = godotenv.Load()

	// startUpMessage
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Straddle Shift Config API")

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		zaplogger.Fatal("failed to load configuration", zaplogger.Fields{"error": err})
	}
	zaplogger.Info("  * loaded")
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Connect to Postgres
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Connect Redis
	redisClient, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Setup the audit workbook
	auditSheet, err := audit.NewSheet(cfg.AuditFilePath, cfg.AuditSheetName)
	if err != nil {
		log.Fatalf("Failed to setup audit workbook: %v", err)
	}

	// Setup routes
	setupRoutes(e, cfg, db, redisClient, auditSheet)

	// Setup and start cron jobs
	cronService := services.NewCronService(cfg, db, redisClient, auditSheet)
	cronService.Start()

	// Start the server
	startServer(e, cfg)

}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3008"
	}
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", cfg.APIName, cfg.APIVersion, port)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + port))
}
