package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	presetFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bazscan",
	Short: "bazscan - Hypixel Bazaar profit scanner",
	Long: `bazscan Unified CLI

Scans a bazaar market snapshot for profit opportunities: fetch, score,
filter, rank, report.

Usage:
  go run ./cmd/bazscan [command]

Examples:
  go run ./cmd/bazscan analyze
  go run ./cmd/bazscan analyze -m quick-buy-sell-percent -v 5000 -n 10
  go run ./cmd/bazscan analyze -f bazaar_raw_20260831_120000.json
  go run ./cmd/bazscan watch --schedule "@every 15m"
  go run ./cmd/bazscan serve`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&presetFile, "preset", "", "strategy preset YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")
}
