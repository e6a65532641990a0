package cmd

import (
	"context"
	"fmt"

	"indexer-sync/core/config"
	"indexer-sync/core/logger"

	"github.com/spf13/cobra"
)

var dryRunSync bool

// syncCmd performs a single reconciliation run and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one reconciliation and exit",
	Long: `Fetch the Prowlarr catalog, diff it against every configured consumer,
create missing indexers, update stale ones, and report orphans.

Examples:
  # One-shot sync
  indexer-sync sync

  # Show the diff without writing anything
  indexer-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Compute and report the diff without issuing writes")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	service, err := newSyncService(cfg, l)
	if err != nil {
		return err
	}

	if _, err := service.Run(ctx, dryRunSync); err != nil {
		return fmt.Errorf("sync run failed: %w", err)
	}
	return nil
}
