package commands

import (
	"fmt"

	"reading-stats/internal/projections"

	"github.com/spf13/cobra"
)

func newRotateCommand(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Merge closed monthly log files into the compressed archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()

			result, err := e.components.Session.Rotate(e.ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Merged) == 0 {
				fmt.Fprintln(out, "nothing to rotate")
				return nil
			}
			for _, name := range result.Merged {
				fmt.Fprintf(out, "merged %s\n", name)
			}
			fmt.Fprintf(out, "history %s\n", projections.FormatKiB(result.ScratchBytes))
			return nil
		},
	}
}

func newSizeCommand(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the size of the log directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			size, err := e.components.LogStore.DirSize(e.ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), projections.FormatKiB(size))
			return nil
		},
	}
}

func newShareCommand(setup setupFunc) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a share link for a month and today's reading slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()
			now := e.now()
			year, mon := now.Year(), int(now.Month())
			if month != "" {
				var parsed bool
				year, mon, parsed = parseMonth(month)
				if !parsed {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
				}
			}
			stats, err := e.load(year, mon)
			if err != nil {
				return err
			}
			url := projections.BuildShareURL(e.config.Sync.Domain, e.config.Goal.DailyTargetMinutes, stats)
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to share (YYYY-MM), defaults to the current month")
	return cmd
}
