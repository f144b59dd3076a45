// Package main is the entry point for the Straddle Shift Config API
package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/straddleshift/configapi/api/strategy"
	"github.com/straddleshift/configapi/audit"
	"github.com/straddleshift/configapi/config"
	"github.com/straddleshift/configapi/shared/response"
	"gorm.io/gorm"
)

// setupRoutes configures the routes for the API
func setupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client, auditSheet *audit.Sheet) {

	// Create a group for all API routes
	api := e.Group("/api")

	// Index route
	api.GET("/", indexRoute)

	// Strategy config routes
	strategyService := strategy.NewService(db, redisClient, auditSheet, cfg.StrategyID)
	strategyHandler := strategy.NewHandler(strategyService)
	strategyGroup := api.Group("/strategy")
	strategyGroup.GET("/config", strategyHandler.GetConfig)
	strategyGroup.GET("/config/prefill", strategyHandler.GetPrefill)
	strategyGroup.GET("/config/times", strategyHandler.GetAllowedTimes)
	strategyGroup.POST("/config", strategyHandler.SaveConfig)
}

// indexRoute sets up the index route for the API
func indexRoute(c echo.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return response.ErrorResponse(c, 500, "ServerException", err.Error())
	}
	message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
	return response.SuccessResponse(c, message)
}
