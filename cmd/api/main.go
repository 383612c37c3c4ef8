package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	_ "github.com/marsnewbie/kiwipure-cleaning/docs"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/routes"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/logger"
)

// @title           KiwiPure Cleaning Quote API
// @version         1.0
// @description     Quote pricing, quote requests, contact messages and deposits for KiwiPure commercial cleaning.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@kiwipure.co.nz

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("", "info")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}
