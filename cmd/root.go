package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/config"
	"github.com/pable/go-nba-metrics/internal/nbastats"
)

var (
	verbose bool

	// cfg is loaded from the environment before any subcommand runs.
	cfg *config.Config

	// log is shared by every command; --verbose switches it to debug.
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "nbametrics",
	Short: "NBA clutch performance metrics tool",
	Long: `Fetch player stats from the public nba.com stats API and report on
clutch performance: per-season clutch box scores, shot-distance
profiles, regular-vs-clutch comparisons, and net ratings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env is optional; absence is the normal case.
		if err := godotenv.Load(); err != nil {
			log.Debugf(".env not loaded: %v", err)
		}

		var err error
		cfg, err = config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(clutchCmd)
	rootCmd.AddCommand(netratingCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(askCmd)
}

// newStatsClient builds the API client from the loaded config. delay
// overrides the configured request spacing when positive.
func newStatsClient(delay time.Duration) *nbastats.Client {
	if delay <= 0 {
		delay = cfg.RequestDelay
	}
	return nbastats.NewClient(cfg.BaseURL, cfg.HTTPTimeout, delay, log)
}
