package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "auction-board",
		Short: "Customs e-auction dashboard with shared cross-module state",
		Long: `auction-board serves the customs e-auction dashboard.

The board lists auctions and recent activity, and exposes a shared
counter and user registry that other modules observe and update.
State lives in memory or in Redis; changes are pushed to browsers
over WebSocket and optionally relayed to NATS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
