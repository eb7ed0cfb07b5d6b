package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joescharf/pomo/internal/output"
	"github.com/joescharf/pomo/internal/stats"
)

var (
	statsFlag bool
	weekFlag  bool
	monthFlag bool

	statsWeek  bool
	statsMonth bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Summarize recorded sessions: completed work sessions, breaks, total
focused time, and cancelled intervals. Same as 'pomo --stats'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := statsWindow(statsWeek, statsMonth)
		if err != nil {
			return err
		}
		return statsRun(w)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsWeek, "week", false, "Restrict to the current week")
	statsCmd.Flags().BoolVar(&statsMonth, "month", false, "Restrict to the current month")
	rootCmd.AddCommand(statsCmd)
}

// statsWindow maps the window flags to a stats.Window. The flags are
// mutually exclusive.
func statsWindow(week, month bool) (stats.Window, error) {
	switch {
	case week && month:
		return "", fmt.Errorf("--week and --month are mutually exclusive")
	case week:
		return stats.Week, nil
	case month:
		return stats.Month, nil
	default:
		return stats.AllTime, nil
	}
}

func statsRun(w stats.Window) error {
	records, err := getStore().Load(context.Background())
	if err != nil {
		return err
	}

	now := time.Now()
	filtered := stats.Filter(records, w, now)
	sum := stats.Aggregate(records, w, now)

	ui.Info("Pomodoro statistics (%s)", string(w))
	if len(filtered) == 0 {
		ui.Info("No sessions recorded yet. Start your first one!")
		return nil
	}

	fmt.Fprintf(ui.Out, "  %-24s %d\n", "Work sessions:", sum.WorkSessions)
	fmt.Fprintf(ui.Out, "  %-24s %d\n", "Breaks:", sum.Breaks)
	fmt.Fprintf(ui.Out, "  %-24s %d min (%.1f h)\n", "Focused time:",
		sum.FocusMinutes(), float64(sum.FocusSeconds)/3600)
	if sum.Incomplete > 0 {
		fmt.Fprintf(ui.Out, "  %-24s %d\n", "Cancelled:", sum.Incomplete)
	}
	if avg := stats.AvgWorkPerDay(filtered); avg > 0 {
		fmt.Fprintf(ui.Out, "  %-24s %.1f work sessions/day\n", "Average:", avg)
	}

	fmt.Fprintln(ui.Out)
	table := ui.Table([]string{"Started", "Kind", "Length", "Status"})
	for _, rec := range stats.Recent(filtered, 10) {
		status := output.Green("done")
		if !rec.Completed {
			status = output.Yellow("cancelled")
		}
		table.Append([]string{
			rec.StartedAt.Format("2006-01-02 15:04"),
			output.KindColor(string(rec.Kind)),
			fmt.Sprintf("%d min", rec.DurationSeconds/60),
			status,
		})
	}
	table.Render()
	return nil
}
