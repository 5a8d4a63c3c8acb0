package cli

import (
	"fmt"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Browse the vendor's projects",
	}
	cmd.AddCommand(newProjectListCmd(app))
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	with := newChoiceFlag("tasks", "tasks", "payments")

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects the vendor has tasks or payments on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}

			var (
				title    string
				projects []domain.Project
			)
			switch with.String() {
			case "tasks":
				title, projects = "Projects with tasks", app.Workspace.ProjectsWithTasks(ctx, sess)
			case "payments":
				title, projects = "Projects with payments", app.Workspace.ProjectsWithPayments(ctx, sess)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(title, projects))
			return nil
		},
	}

	cmd.Flags().Var(with, "with", "Filter by related records: tasks or payments")
	return cmd
}

// projectNames indexes project names by id for display.
func projectNames(projects []domain.Project) map[int]string {
	names := make(map[int]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}
