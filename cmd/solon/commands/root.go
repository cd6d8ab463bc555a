package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dashboardFile string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solon",
	Short: "SolonInsight macro dashboard updater",
	Long: `SolonInsight dashboard updater

Fetches the configured FRED indicator series, classifies each value
against its thresholds, and publishes the latest snapshot atomically.

Examples:
  solon update --mode daily
  solon update --mode weekly --config config.yaml
  solon check`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dashboardFile, "config", "config.yaml", "dashboard config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
