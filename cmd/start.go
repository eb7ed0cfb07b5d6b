package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/pomo/internal/cycle"
	"github.com/joescharf/pomo/internal/notify"
)

var (
	longBreakFlag  int
	skipBreaksFlag bool
)

// startRun validates the configuration and drives one full cycle. SIGINT
// cancels the context, which the runner turns into an incomplete record.
func startRun(cmd *cobra.Command) error {
	minutes := viper.GetInt("long_break")
	if cmd.Flags().Changed("break") {
		minutes = longBreakFlag
	}

	cfg := cycle.Config{LongBreak: minutes, SkipBreaks: skipBreaksFlag}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ui.Info("Starting Pomodoro: 4x25 min work, 5 min short breaks, %d min long break", cfg.LongBreak)
	ui.VerboseLog("history file: %s", getStore().Path())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := &cycle.Runner{
		Store:      getStore(),
		Notifier:   newNotifier(),
		UI:         ui,
		Durations:  cycle.DefaultDurations(cfg.LongBreak),
		SkipBreaks: cfg.SkipBreaks,
	}
	return runner.Run(ctx)
}

// newNotifier builds the desktop notifier from config. Notifications are
// best-effort throughout.
func newNotifier() notify.Notifier {
	if !viper.GetBool("notify.enabled") {
		return notify.Disabled()
	}
	return notify.NewDBusNotifier(viper.GetString("notify.app_name"))
}
