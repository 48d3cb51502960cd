package main

import (
	"fyyur_app_go/config"
	"fyyur_app_go/db"
	"fyyur_app_go/handlers"
	"fyyur_app_go/logger"
	"fyyur_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.Environment)

	// Initialize database
	var err error
	if cfg.TursoDatabaseURL != "" {
		err = db.InitializeRemote(cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment)
	} else {
		err = db.Initialize(cfg.DBPath, cfg.Environment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	e := echo.New()
	e.HideBanner = true
	handlers.Register(e, cfg)

	log.Info().Str("port", cfg.ServerPort).Str("environment", cfg.Environment).Msg("Server starting")
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
