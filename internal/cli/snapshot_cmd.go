package cli

import (
	"fmt"

	"github.com/alexanderramin/siteworks/internal/codec"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export or reset the stored snapshot",
	}
	cmd.AddCommand(
		newSnapshotExportCmd(app),
		newSnapshotResetCmd(app),
	)
	return cmd
}

func newSnapshotExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the vendor's view of the snapshot to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			sess, err := app.session(ctx)
			if err != nil {
				return err
			}
			data, err := codec.Encode(app.Workspace.GetSnapshot(ctx, sess), f)
			if err != nil {
				return fmt.Errorf("exporting snapshot: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	return cmd
}

func newSnapshotResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace all data with the sample seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return settle(app.Workspace.Reset(cmd.Context()))
		},
	}
}
