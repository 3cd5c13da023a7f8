// File: /main.go
package main

import (
	"log/slog"
	"os"

	"comments-api/config"
	"comments-api/database"
	"comments-api/logging"
	"comments-api/middleware"
	"comments-api/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.IsProduction())

	gormLogLevel := logger.Info
	if cfg.IsProduction() {
		gormLogLevel = logger.Warn
	}

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, gormLogLevel)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	if cfg.SeedData {
		if err := database.SeedData(db); err != nil {
			slog.Warn("failed to seed database", "error", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorHandler())

	routes.SetupRoutes(router, db, cfg)

	slog.Info("starting comments API", "port", cfg.Port, "env", cfg.Environment, "db_driver", cfg.DatabaseDriver)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
