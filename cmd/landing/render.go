package main

import (
	"github.com/spf13/cobra"

	landing "github.com/3-lines-studio/vibe-landing"
)

func newRenderCommand(state *rootState) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a page's HTML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := landing.Default(landing.Options{
				Dev:     true,
				Version: version,
				Logger:  state.logger,
			})
			if err != nil {
				return err
			}

			html, err := app.RenderPage(cmd.Context(), path)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "/", "route to render")
	return cmd
}
