package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/vibe-landing/internal/adapters/cli"
	"github.com/3-lines-studio/vibe-landing/internal/config"
	"github.com/3-lines-studio/vibe-landing/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootState struct {
	cfg    *config.Config
	logger *slog.Logger

	dev       bool
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	state := &rootState{}

	root := &cobra.Command{
		Use:   "landing",
		Short: "Serve or export the Vibe Coding Template landing page",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return state.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&state.dev, "dev", false, "dev mode: re-render on every request and show error details")
	flags.StringVar(&state.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&state.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		newServeCommand(state),
		newExportCommand(state),
		newRenderCommand(state),
		newVersionCommand(),
	)

	return root
}

// execute runs root and prints a failure on stderr.
func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		cli.NewWriterOutput(root.OutOrStdout(), root.ErrOrStderr()).PrintError("%v", err)
		return err
	}
	return nil
}

func (s *rootState) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("dev") {
		cfg.Dev = s.dev
	}
	if s.logLevel != "" {
		cfg.LogLevel = s.logLevel
	}
	if s.logFormat != "" {
		cfg.LogFormat = s.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}
