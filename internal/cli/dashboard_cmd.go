package cli

import (
	"fmt"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show project and task counts for the current vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}
			counts := app.Workspace.DashboardCounts(ctx, sess)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(sess.VendorID(), counts))
			return nil
		},
	}
}
