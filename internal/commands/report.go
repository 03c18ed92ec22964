package commands

import (
	"fmt"
	"io"
	"time"

	"reading-stats/internal/models"
	"reading-stats/internal/projections"

	"github.com/spf13/cobra"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

var weekdayNames = [models.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func newReportCommand(setup setupFunc) *cobra.Command {
	var month, day string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print totals, goal progress, the week and one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()
			now := e.now()
			session := e.components.Session

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
			if day != "" {
				t, err := time.ParseInLocation(dayLayout, day, e.components.Location)
				if err != nil {
					return fmt.Errorf("invalid --day %q, expected YYYY-MM-DD", day)
				}
				stats = session.SelectDay(e.ctx, t)
			}

			goal := projections.EvaluateGoal(stats, e.config.Goal.DailyTargetMinutes, now)
			out := cmd.OutOrStdout()
			writeTotals(out, stats, goal)
			writeWeek(out, stats)
			writeMonth(out, stats)
			writeDay(out, stats, e.components.Location)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM), defaults to the current month")
	cmd.Flags().StringVar(&day, "day", "", "Day to show (YYYY-MM-DD), defaults to today")
	return cmd
}

func parseMonth(value string) (int, int, bool) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

func writeTotals(out io.Writer, stats *models.Stats, goal projections.GoalProgress) {
	fmt.Fprintf(out, "Today %s\n", projections.FormatHMS(stats.TodaySeconds))
	fmt.Fprintf(out, "Week  %s\n", projections.FormatHMS(stats.WeekSeconds))
	fmt.Fprintf(out, "Month %s\n", projections.FormatHMS(stats.MonthSeconds))
	fmt.Fprintf(out, "Total %s\n", projections.FormatHMS(stats.TotalSeconds))
	if goal.MetToday {
		fmt.Fprintf(out, "Goal  %d min met, streak %d days, %d days this month\n", goal.TargetMinutes, goal.Streak, goal.MonthMetDays)
	} else {
		fmt.Fprintf(out, "Goal  %d min, %d min to go, streak %d days, %d days this month\n", goal.TargetMinutes, goal.RemainingMinutes, goal.Streak, goal.MonthMetDays)
	}
}

func writeWeek(out io.Writer, stats *models.Stats) {
	fmt.Fprintln(out)
	for i, seconds := range stats.WeekDays {
		fmt.Fprintf(out, "%s %s\n", weekdayNames[i], projections.FormatHMS(seconds))
	}
}

func writeMonth(out io.Writer, stats *models.Stats) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%04d-%02d %s\n", stats.ViewedYear, stats.ViewedMonth, projections.FormatHMS(projections.MonthTotal(stats)))
	for i, seconds := range stats.ViewedMonthDays {
		if seconds == 0 {
			continue
		}
		fmt.Fprintf(out, "  %02d %s\n", i+1, projections.FormatHMS(seconds))
	}
}

func writeDay(out io.Writer, stats *models.Stats, loc *time.Location) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", time.Unix(stats.ViewedDay, 0).In(loc).Format(dayLayout), projections.FormatHMS(stats.ViewedDaySeconds))
	for i, seconds := range stats.ViewedDayBuckets {
		if seconds == 0 {
			continue
		}
		start := i * int(models.BucketSeconds/3600)
		fmt.Fprintf(out, "  %02d-%02d %s\n", start, start+int(models.BucketSeconds/3600), projections.FormatHMS(seconds))
	}
}
