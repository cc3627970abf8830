package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/KennyASG/ticketapp/internal/api"
	"github.com/KennyASG/ticketapp/internal/infrastructure/db/postgres"
	"github.com/KennyASG/ticketapp/internal/pkg/config"
	"github.com/KennyASG/ticketapp/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAuth(context.Background())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		lg.Fatal().Err(err).Msg("database unreachable")
	}

	e, err := api.NewAuthRouter(db, cfg, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("router setup failed")
	}

	lg.Info().Str("port", cfg.Port).Msg("auth service listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		lg.Fatal().Err(err).Msg("server stopped")
	}
}
