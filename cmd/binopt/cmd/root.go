package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "binopt",
	Short: "A risk-managed session tracker for binary options trading",
	Long: `Binopt is an interactive session tracker for binary options trading written in Go.

It provides tools for:
  - Logging trade outcomes from a live terminal dashboard
  - Percent-of-balance position sizing with payout-aware statistics
  - Hard session stops on drawdown and consecutive-loss limits
  - Undoing mislogged trades with exact balance and streak restoration
  - Journaling finished sessions to SQLite or CSV
  - Reviewing past sessions as Org-mode notes

Complete documentation is available at https://github.com/rustyeddy/binopt`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
