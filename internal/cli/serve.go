package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/routes"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if f, _ := cmd.Flags().GetString("pricing-file"); f != "" {
				cfg.Pricing.File = f
			}
			log := logger.New(cfg.Environment, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return routes.Run(ctx, cfg, log)
		},
	}
}
