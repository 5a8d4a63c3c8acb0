package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/service"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPaymentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "List, request and advance payments",
	}
	cmd.AddCommand(
		newPaymentListCmd(app),
		newPaymentRequestCmd(app),
		newPaymentAdvanceCmd(app),
	)
	return cmd
}

func newPaymentListCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the vendor's payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}

			var filter *int
			if cmd.Flags().Changed("project") {
				filter = &projectID
			}
			payments := app.Workspace.Payments(ctx, sess, filter)
			names := projectNames(app.Workspace.GetSnapshot(ctx, sess).Projects)
			totals := app.Workspace.PaymentTotals(ctx, sess)

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPaymentBoard(payments, names, totals))
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Only payments for this project id")
	return cmd
}

func newPaymentRequestCmd(app *App) *cobra.Command {
	var req service.RaisePaymentRequest

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Raise a payment request for a completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}

			if app.interactive() && (req.ProjectID == 0 || req.TaskID == 0) {
				if form := paymentRequestForm(ctx, app, sess, &req); form != nil {
					if err := app.runForm(ctx, form); err != nil {
						return fmt.Errorf("requesting payment: %w", err)
					}
					projectForTask(ctx, app, sess, &req)
				}
			}

			payment, err := app.Workspace.RaisePaymentRequest(ctx, sess, req)
			if payment != nil {
				names := projectNames(app.Workspace.GetSnapshot(ctx, sess).Projects)
				fmt.Fprintln(cmd.OutOrStdout(), formatter.PaymentTable([]domain.Payment{*payment}, names))
			}
			return settle(err)
		},
	}

	cmd.Flags().IntVar(&req.ProjectID, "project", 0, "Project id")
	cmd.Flags().IntVar(&req.TaskID, "task", 0, "Completed task id")
	return cmd
}

// paymentRequestForm offers the vendor's completed tasks. It returns nil
// when nothing is eligible so the workflow reports the reason.
func paymentRequestForm(ctx context.Context, app *App, sess session.Session, req *service.RaisePaymentRequest) *huh.Form {
	var filter *int
	if req.ProjectID != 0 {
		filter = &req.ProjectID
	}
	eligible := app.Workspace.EligibleTasks(ctx, sess, filter)
	if len(eligible) == 0 {
		return nil
	}

	names := projectNames(app.Workspace.GetSnapshot(ctx, sess).Projects)
	options := make([]huh.Option[int], 0, len(eligible))
	for _, t := range eligible {
		label := fmt.Sprintf("%s · %s (task %d)", names[t.ProjectID], t.Name, t.ID)
		options = append(options, huh.NewOption(label, t.ID))
	}

	sel := huh.NewSelect[int]().
		Title("Completed task").
		Options(options...).
		Value(&req.TaskID)

	return huh.NewForm(huh.NewGroup(sel)).WithTheme(siteworksHuhTheme()).WithShowHelp(false)
}

// projectForTask fills a missing project selection from the picked task.
func projectForTask(ctx context.Context, app *App, sess session.Session, req *service.RaisePaymentRequest) {
	if req.ProjectID != 0 || req.TaskID == 0 {
		return
	}
	for _, t := range app.Workspace.EligibleTasks(ctx, sess, nil) {
		if t.ID == req.TaskID {
			req.ProjectID = t.ProjectID
			return
		}
	}
}

func newPaymentAdvanceCmd(app *App) *cobra.Command {
	var paymentID int

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move a payment to its next status (pending, approved, paid)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}
			_, err = app.Workspace.AdvancePayment(ctx, sess, paymentID)
			return settle(err)
		},
	}

	cmd.Flags().IntVar(&paymentID, "payment", 0, "Payment id")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}
