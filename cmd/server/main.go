package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/config"
	"github.com/examplan/examplan_backend/internal/database"
	"github.com/examplan/examplan_backend/internal/routes"
	"github.com/examplan/examplan_backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	if err := database.SeedAdmin(db, cfg, logger); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	hub := ws.NewHub()
	go hub.Run()

	r := gin.Default()
	routes.Register(r, db, cfg, logger, hub)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
