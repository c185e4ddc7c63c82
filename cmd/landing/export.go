package main

import (
	"github.com/spf13/cobra"

	landing "github.com/3-lines-studio/vibe-landing"
	"github.com/3-lines-studio/vibe-landing/internal/adapters/cli"
)

func newExportCommand(state *rootState) *cobra.Command {
	var (
		outDir string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Prerender the site into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = state.cfg.OutDir
			}

			out := cli.NewWriterOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.SetQuiet(quiet)
			out.PrintHeader("Landing Export")

			app, err := landing.Default(landing.Options{
				Dev:     state.cfg.Dev,
				Version: version,
				Logger:  state.logger,
			})
			if err != nil {
				return err
			}

			report := cli.NewExportReport(out, outDir)
			manifest, err := app.Export(cmd.Context(), outDir, landing.WithProgress(out))
			report.Finish(manifest, err)
			report.Render()
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from LANDING_OUT_DIR)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not list written files")
	return cmd
}
