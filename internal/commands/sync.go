package commands

import (
	"errors"
	"fmt"

	"reading-stats/internal/projections"
	"reading-stats/internal/syncs"

	"github.com/spf13/cobra"
)

var errSyncDisabled = errors.New("sync is disabled, set sync.enabled in the config")

func newSyncCommand(setup setupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload the log files and the archive to the sync server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			if e.components.SyncService == nil {
				return errSyncDisabled
			}
			defer e.cleanup()
			now := e.now()
			// The upload carries today's and this month's totals.
			if _, err := e.load(now.Year(), int(now.Month())); err != nil {
				return err
			}
			result, err := e.components.SyncService.Sync(e.ctx)
			if syncs.IsDeviceExpired(err) {
				return fmt.Errorf("%w; log in again to resume syncing", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d files (%s)\n", result.Files, projections.FormatKiB(result.Bytes))
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the login state and the time of the last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			if e.components.SyncService == nil {
				return errSyncDisabled
			}
			status := e.components.SyncService.Status(e.ctx)
			out := cmd.OutOrStdout()
			if !status.LoggedIn {
				fmt.Fprintln(out, "not logged in")
			} else if status.Nickname != "" {
				fmt.Fprintf(out, "logged in as %s (%s)\n", status.Nickname, status.DeviceName)
			} else {
				fmt.Fprintln(out, "logged in")
			}
			fmt.Fprintf(out, "last sync: %s\n", status.LastSyncText)
			return nil
		},
	})
	return cmd
}
