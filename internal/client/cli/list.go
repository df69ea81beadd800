package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the timeline grouped by month",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := app.controller()

			res, err := ctrl.Load(cmd.Context())
			if err != nil {
				return err
			}
			if res.Local() {
				fmt.Fprintln(app.Out, app.renderer.Offline())
			}
			fmt.Fprint(app.Out, app.renderer.Timeline(ctrl.Entries()))
			return nil
		},
	}
}
