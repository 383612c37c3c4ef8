// Package cli holds the quotectl commands.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/routes"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/logger"
)

// submitterFunc opens the quote store configured by the environment.
type submitterFunc func(ctx context.Context) (pricing.Submitter, io.Closer, error)

func NewRootCmd() *cobra.Command {
	return newRootCmd(openSubmitter)
}

func newRootCmd(open submitterFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "KiwiPure cleaning quote tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("pricing-file", "", "rate table overlay (yaml, json or toml)")

	root.AddCommand(
		estimateCmd(open),
		validateCmd(),
		serveCmd(),
	)
	return root
}

func openSubmitter(ctx context.Context) (pricing.Submitter, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)
	app, err := routes.Build(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return app.Quotes, closerFunc(app.Close), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
