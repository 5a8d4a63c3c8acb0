package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/service"
	"github.com/alexanderramin/siteworks/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// ErrReported marks a failure that was already shown to the user as a
// notification. main exits non-zero without printing it again.
var ErrReported = errors.New("reported")

// App holds what the CLI commands need: the workspace, the notification
// output, and terminal hooks that tests replace.
type App struct {
	Workspace service.Workspace
	Output    *OutputSink

	// VendorID scopes the session. Zero falls back to the snapshot's vendor.
	VendorID int

	IsInteractive func() bool
	RunForm       func(ctx context.Context, f *huh.Form) error
	RunProgram    func(m tea.Model, in io.Reader, out io.Writer) error
}

// NewRootCmd creates the top-level "siteworks" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var vendorFlag int

	root := &cobra.Command{
		Use:           "siteworks",
		Short:         "Vendor task and payment tracker for construction projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Output != nil {
				app.Output.SetWriter(cmd.OutOrStdout())
			}
			if cmd.Flags().Changed("vendor") {
				app.VendorID = vendorFlag
			}
			return nil
		},
	}
	root.PersistentFlags().IntVar(&vendorFlag, "vendor", 0, "Act as this vendor id (default: the snapshot's vendor)")

	root.AddCommand(
		newDashboardCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newPaymentCmd(app),
		newSnapshotCmd(app),
		newBoardCmd(app),
	)

	return root
}

func (app *App) session(ctx context.Context) (session.Session, error) {
	vendorID := app.VendorID
	if vendorID == 0 {
		vendorID = app.Workspace.DefaultVendor(ctx)
	}
	return session.New(vendorID)
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) runForm(ctx context.Context, f *huh.Form) error {
	if app.RunForm != nil {
		return app.RunForm(ctx, f)
	}
	return f.RunWithContext(ctx)
}

// fail reports a lookup failure through the notification output, the same
// way the workflow reports its own failures, then settles it.
func (app *App) fail(ctx context.Context, err error) error {
	if app.Output != nil && (domain.IsValidation(err) || domain.IsNotFound(err)) {
		app.Output.Notify(ctx, notify.Notification{Message: err.Error(), Severity: notify.SeverityError})
	}
	return settle(err)
}

// settle maps a workflow result to the command's exit status. The workflow
// already notified the user; a persistence failure is only a warning.
func settle(err error) error {
	switch {
	case err == nil, domain.IsPersistence(err):
		return nil
	case domain.IsValidation(err), domain.IsNotFound(err):
		return fmt.Errorf("%w: %w", ErrReported, err)
	default:
		return err
	}
}

// OutputSink prints notifications to the current command's output.
type OutputSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewOutputSink(w io.Writer) *OutputSink {
	return &OutputSink{w: w}
}

func (s *OutputSink) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

func (s *OutputSink) Notify(_ context.Context, n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return
	}
	fmt.Fprintln(s.w, formatter.FormatNotification(n))
}
