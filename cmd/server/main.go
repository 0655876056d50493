package main

import (
	"context"
	"log"
	"time"

	"shift-planner-backend/internal/api/routes"
	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/database"
	"shift-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.SetLevel(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize cache store:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, app := routes.SetupRoutes(db, cfg)

	go runRetention(app, cfg)

	port := cfg.Port
	if port == "" {
		port = "7010"
	}
	logrus.Infof("Starting shift planner backend on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Server failed to start:", err)
	}
}

// runRetention purges cache rows beyond the retention horizon once a
// day. Cache-only housekeeping; the remote store is never touched.
func runRetention(app *routes.App, cfg *config.Config) {
	log := logger.NewWithComponent("retention")
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		now := time.Now()
		if purged, err := app.Shifts.DeleteOldCachedShifts(ctx, now); err != nil {
			log.WithError(err).Warn("shift retention pass failed")
		} else if purged > 0 {
			log.WithField("purged", purged).Info("purged old cached shifts")
		}
		if purged, err := app.Absences.DeleteOldCachedAbsences(ctx, now, cfg.RetentionDays); err != nil {
			log.WithError(err).Warn("absence retention pass failed")
		} else if purged > 0 {
			log.WithField("purged", purged).Info("purged old cached absences")
		}
		cancel()

		<-ticker.C
	}
}
