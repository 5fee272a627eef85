// Command cleanup removes read notifications older than -keep and exits.
// It is meant for a cron job when the API's own cleanup loop is not enough.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/rs/zerolog/log"

	"venuehub/internal/config"
	"venuehub/internal/database"
	"venuehub/internal/domain/notification"
	"venuehub/internal/logger"
)

func main() {
	keep := flag.Duration("keep", 30*24*time.Hour, "keep read notifications younger than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	svc := notification.NewService(notification.NewRepository(db), nil, nil)
	deleted, err := svc.Cleanup(context.Background(), *keep)
	if err != nil {
		log.Fatal().Err(err).Msg("notification cleanup failed")
	}
	log.Info().Int64("notifications", deleted).Msg("cleanup completed")
}
