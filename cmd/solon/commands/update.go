package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solonmacro/solonmacro.github.io/internal/dashboard"
	"github.com/solonmacro/solonmacro.github.io/internal/external/fred"
	"github.com/solonmacro/solonmacro.github.io/internal/snapshot"
	"github.com/solonmacro/solonmacro.github.io/pkg/config"
	"github.com/solonmacro/solonmacro.github.io/pkg/logger"
)

var updateMode string

var validModes = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
}

// updateCmd runs the full pipeline once and publishes the latest snapshot.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch all indicators and publish the latest snapshot",
	Long: `Fetches every enabled indicator from FRED, classifies each value
against its thresholds, and atomically replaces <data_dir>/<latest_file>.

Per-indicator failures are recorded in the snapshot (signal "unknown",
error text in notes) and do not fail the run. Only a persistence failure
exits nonzero.

Example:
  solon update --mode daily`,
	RunE:          runUpdate,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateMode, "mode", "", "execution mode (daily|weekly|monthly)")
	_ = updateCmd.MarkFlagRequired("mode")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if !validModes[updateMode] {
		return fmt.Errorf("invalid mode %q (valid: daily, weekly, monthly)", updateMode)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)

	dash, err := dashboard.Load(dashboardFile)
	if err != nil {
		return err
	}

	// The atomic writer assumes the directory exists; it is created here.
	if err := os.MkdirAll(dash.Output.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// External termination cancels in-flight fetches and backoff waits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := fred.NewClient(cfg, log)
	builder := snapshot.NewBuilder(client, log)

	log.Infof("Starting update: mode=%s, indicators=%d", updateMode, len(dash.Indicators))

	snap := builder.Build(ctx, updateMode, dash)

	latestPath := filepath.Join(dash.Output.DataDir, dash.Output.LatestFile)
	if err := snapshot.WriteAtomic(snap, latestPath); err != nil {
		log.WithError(err).Error("Snapshot write failed")
		return err
	}

	log.Infof("Updated %s", latestPath)
	log.Infof("Mode=%s, Indicators=%d", updateMode, len(snap.Indicators))

	return nil
}
