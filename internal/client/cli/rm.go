package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])

			if !yes && !app.confirm(fmt.Sprintf("Delete entry %s? [y/N] ", id)) {
				fmt.Fprintln(app.Out, "Cancelled.")
				return nil
			}

			ctrl := app.controller()
			if _, err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}

			res, err := ctrl.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.renderer.Removed(id, res.Local()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *App) confirm(prompt string) bool {
	fmt.Fprint(a.Out, prompt)

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
