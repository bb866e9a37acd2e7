package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/soopyv/bazscan/internal/bazaar"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a bazaar snapshot and save the raw payload",
	Long: `Fetches a snapshot from the configured bazaar sources and saves the raw
payload for later replay with analyze -f. No analysis is run.

Example:
  go run ./cmd/bazscan fetch
  go run ./cmd/bazscan fetch --out ./snapshots`,
	RunE: runFetch,
}

var fetchOutDir string

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchOutDir, "out", "", "directory for the saved payload (default: OUTPUT_DIR)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	snapshot, raw, err := a.client.Fetch(cmd.Context())
	if err != nil {
		if errors.Is(err, bazaar.ErrUnavailable) {
			printUnavailableHelp()
		}
		return err
	}

	dir := fetchOutDir
	if dir == "" {
		dir = a.cfg.Output.Dir
	}

	path, err := bazaar.SaveRaw(dir, raw, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d items (%d skipped) from %s\n", snapshot.Len(), snapshot.Malformed, snapshot.Source)
	fmt.Printf("Saved raw payload to %s\n", path)
	return nil
}
