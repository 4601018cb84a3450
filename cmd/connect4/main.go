package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/cli"
	"github.com/iamasit07/connect4-engine/internal/config"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	logger := config.NewLogger(cfg.LogLevel, cfg.LogPretty, os.Stderr)
	if envErr != nil {
		logger.Debug().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cfg, logger); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
