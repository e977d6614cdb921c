package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"cottagesheets/internal/config"
	"cottagesheets/internal/database"
	"cottagesheets/internal/logger"
	"cottagesheets/internal/repository"
)

// Запускается по cron и вычищает истекшие сессии,
// иначе таблица растет с каждым логином.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal().Err(err).Msg("logger")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	sessions := repository.NewSessionRepository(db)

	removed, err := sessions.DeleteExpired(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("session cleanup failed")
	}

	log.Info().Int64("removed", removed).Msg("session cleanup completed")
}
