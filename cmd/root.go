package cmd

import (
	"fmt"
	"os"

	"indexer-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "indexer-sync",
	Short: "Indexer Sync Service",
	Long: `Indexer Sync reconciles a Prowlarr indexer catalog against the indexer
configuration of downstream applications (sonarr, radarr, lidarr, readarr),
creating missing indexers, updating stale ones, and reporting orphans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application's standard logger. Console format with
		// debug-level config gives readable timestamps for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
