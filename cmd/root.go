package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/pomo/internal/output"
	"github.com/joescharf/pomo/internal/store"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui        *output.UI
	dataStore store.Store

	verbose bool
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro timer with desktop notifications and session history",
	Long: `pomo runs the classic Pomodoro cycle: four 25-minute work sessions
separated by 5-minute short breaks, then one long break. Completed and
cancelled intervals are recorded to a history file and summarized with
--stats.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootRun(cmd)
	},
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", buildVersion, buildCommit, buildDate)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/pomo/config.yaml)")

	rootCmd.Flags().IntVar(&longBreakFlag, "break", 0, "Long break duration in minutes (15-30)")
	rootCmd.Flags().BoolVar(&skipBreaksFlag, "skip-breaks", false, "Skip the short breaks between work sessions")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false, "Show statistics instead of starting a cycle")
	rootCmd.Flags().BoolVar(&weekFlag, "week", false, "Restrict --stats to the current week")
	rootCmd.Flags().BoolVar(&monthFlag, "month", false, "Restrict --stats to the current month")
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "pomo")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("POMO")
	viper.AutomaticEnv()

	// Defaults via viper.SetDefault()
	home, _ := os.UserHomeDir()
	defaultConfigDir := filepath.Join(home, ".config", "pomo")

	viper.SetDefault("data_path", filepath.Join(defaultConfigDir, "history.json"))
	viper.SetDefault("long_break", 20)
	viper.SetDefault("notify.enabled", true)
	viper.SetDefault("notify.app_name", "pomo")

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
}

// rootRun handles `pomo` with no subcommand: report stats when --stats is
// given, otherwise run a full cycle.
func rootRun(cmd *cobra.Command) error {
	if statsFlag {
		w, err := statsWindow(weekFlag, monthFlag)
		if err != nil {
			return err
		}
		return statsRun(w)
	}
	if weekFlag || monthFlag {
		// Window flags only modify --stats.
		ui.Warning("--week/--month have no effect without --stats")
	}
	return startRun(cmd)
}

// getStore returns the shared history store, initializing it on first use.
func getStore() store.Store {
	if dataStore == nil {
		dataStore = store.NewJSONStore(viper.GetString("data_path"))
	}
	return dataStore
}
