package cli

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse tasks and payments interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("board needs an interactive terminal")
			}
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}

			run := app.RunProgram
			if run == nil {
				run = runProgram
			}
			return run(newBoardModel(ctx, app.Workspace, sess), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runProgram(m tea.Model, in io.Reader, out io.Writer) error {
	_, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen()).Run()
	return err
}
