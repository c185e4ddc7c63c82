package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	landing "github.com/3-lines-studio/vibe-landing"
	"github.com/3-lines-studio/vibe-landing/internal/server"
	"github.com/3-lines-studio/vibe-landing/internal/telemetry"
)

const serviceName = "landing"

func newServeCommand(state *rootState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				state.cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, state)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from LANDING_ADDR)")
	return cmd
}

func serve(ctx context.Context, state *rootState) error {
	cfg, logger := state.cfg, state.logger

	shutdown, err := telemetry.Setup(ctx, serviceName, version, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	app, err := landing.Default(landing.Options{
		Dev:     cfg.Dev,
		Version: version,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(cfg.Addr, app.Handler(), logger)
	if err != nil {
		return err
	}

	logger.Info("starting landing page",
		"addr", cfg.Addr,
		"mode", app.Mode().String(),
		"version", version,
		"tracing", cfg.OTelEndpoint != "",
	)
	return srv.ListenAndServe(ctx)
}
