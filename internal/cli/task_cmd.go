package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/service"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "View and complete tasks",
	}
	cmd.AddCommand(
		newTaskBoardCmd(app),
		newTaskShowCmd(app),
		newTaskCompleteCmd(app),
	)
	return cmd
}

func newTaskBoardCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a project's tasks grouped by week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}
			board, err := app.Workspace.TaskBoard(ctx, sess, projectID)
			if err != nil {
				return app.fail(ctx, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskBoard(board.Project, board.Weeks))
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	var taskID int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one task with its completion evidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}
			task, ok := query.FindVisibleTask(app.Workspace.GetSnapshot(ctx, sess), taskID, sess.VendorID())
			if !ok {
				return app.fail(ctx, &domain.NotFoundError{Entity: "task", ID: taskID})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(task))
			return nil
		},
	}

	cmd.Flags().IntVar(&taskID, "task", 0, "Task id")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	var req service.CompleteTaskRequest

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark a task completed with before/after evidence and notes",
		Long: "Mark a task completed. Evidence references are URLs to the before and\n" +
			"after photos. Missing values are prompted for on an interactive terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}

			if app.interactive() && (req.TaskID == 0 || req.BeforeRef == "" || req.AfterRef == "" || req.Notes == "") {
				if form := completeTaskForm(ctx, app, sess, &req); form != nil {
					if err := app.runForm(ctx, form); err != nil {
						return fmt.Errorf("completing task: %w", err)
					}
				}
			}

			task, err := app.Workspace.CompleteTask(ctx, sess, req)
			if task != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(*task))
			}
			return settle(err)
		},
	}

	cmd.Flags().IntVar(&req.TaskID, "task", 0, "Task id")
	cmd.Flags().StringVar(&req.BeforeRef, "before", "", "Before photo reference (URL)")
	cmd.Flags().StringVar(&req.AfterRef, "after", "", "After photo reference (URL)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Completion notes")
	return cmd
}

// completeTaskForm asks for whatever the flags left blank, or returns nil
// when there is nothing to ask. The task picker lists only the vendor's
// active tasks.
func completeTaskForm(ctx context.Context, app *App, sess session.Session, req *service.CompleteTaskRequest) *huh.Form {
	var fields []huh.Field

	if req.TaskID == 0 {
		snap := app.Workspace.GetSnapshot(ctx, sess)
		names := projectNames(snap.Projects)
		options := []huh.Option[int]{}
		for _, t := range snap.Tasks {
			if t.VendorID == sess.VendorID() && !t.IsCompleted() {
				label := fmt.Sprintf("%s · week %d · %s", names[t.ProjectID], t.WeekID, t.Name)
				options = append(options, huh.NewOption(label, t.ID))
			}
		}
		if len(options) > 0 {
			fields = append(fields, huh.NewSelect[int]().Title("Task").Options(options...).Value(&req.TaskID))
		}
	}
	if req.BeforeRef == "" {
		fields = append(fields, huh.NewInput().Title("Before photo URL").Value(&req.BeforeRef).Validate(requiredText("before photo")))
	}
	if req.AfterRef == "" {
		fields = append(fields, huh.NewInput().Title("After photo URL").Value(&req.AfterRef).Validate(requiredText("after photo")))
	}
	if req.Notes == "" {
		fields = append(fields, huh.NewText().Title("Notes").Value(&req.Notes).Validate(requiredText("notes")))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(siteworksHuhTheme()).WithShowHelp(false)
}

func requiredText(label string) func(string) error {
	return func(s string) error {
		if domain.OptionalString(s) == nil {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
