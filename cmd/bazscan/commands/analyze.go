package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soopyv/bazscan/internal/analysis"
	"github.com/soopyv/bazscan/internal/bazaar"
	"github.com/soopyv/bazscan/internal/scan"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan the bazaar for profit opportunities",
	Long: `Fetches a bazaar snapshot (or replays a saved one), scores every item
under the chosen method, filters by volume and price, ranks the survivors
and writes JSON + CSV artifacts.

Methods:
  buy-sell-order-percent         - order-book spread as % of buy price (default)
  quick-buy-sell-percent         - instant-fill spread as % of quick-buy price
  buy-order-to-sell-order-margin - order-book spread in raw coins
  quick-buy-to-sell-order-margin - instant-fill spread in raw coins

Example:
  go run ./cmd/bazscan analyze
  go run ./cmd/bazscan analyze -m quick-buy-sell-percent -v 5000 -n 10
  go run ./cmd/bazscan analyze -f bazaar_raw_20260831_120000.json
  go run ./cmd/bazscan analyze --preset presets/high_volume.yaml`,
	RunE: runAnalyze,
}

var (
	analyzeFlags  = defaultScanFlags()
	analyzeReplay string
	analyzeNoSave bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.method, "method", "m", analyzeFlags.method, "profit calculation method used for ranking")
	analyzeCmd.Flags().Int64VarP(&analyzeFlags.minVolume, "min-volume", "v", analyzeFlags.minVolume, "minimum combined volume to consider")
	analyzeCmd.Flags().IntVarP(&analyzeFlags.topN, "top-n", "n", analyzeFlags.topN, "number of top items to report")
	analyzeCmd.Flags().Float64VarP(&analyzeFlags.minPrice, "min-price", "p", analyzeFlags.minPrice, "minimum buy price to consider")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.maxPrice, "max-price", analyzeFlags.maxPrice, "maximum buy price to consider (0 = unbounded)")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.positive, "positive", false, "keep only items with a positive score")
	analyzeCmd.Flags().StringVarP(&analyzeReplay, "file", "f", "", "replay a previously saved raw snapshot file")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-artifacts", false, "skip writing JSON/CSV artifacts")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	method, criteria, presetHash, err := resolveScanConfig(analyzeFlags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	result, err := a.runner.Run(cmd.Context(), scan.Options{
		Method:         method,
		Criteria:       criteria,
		ReplayFile:     analyzeReplay,
		PresetHash:     presetHash,
		WriteArtifacts: !analyzeNoSave,
		Out:            os.Stdout,
	})
	if err != nil {
		if errors.Is(err, bazaar.ErrUnavailable) || errors.Is(err, analysis.ErrNoData) {
			printUnavailableHelp()
		}
		return err
	}

	a.log.WithFields(map[string]interface{}{
		"items":   len(result.Items),
		"skipped": result.Skipped,
	}).Debug("Analyze finished")
	return nil
}

// printUnavailableHelp mirrors the guidance users need when every source is
// down: retry later or replay a saved snapshot.
func printUnavailableHelp() {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Could not obtain bazaar data. Options:")
	fmt.Fprintln(os.Stderr, "  1. Check your internet connection")
	fmt.Fprintln(os.Stderr, "  2. The bazaar APIs might be down - try again later")
	fmt.Fprintln(os.Stderr, "  3. Replay a previously saved snapshot:")
	fmt.Fprintln(os.Stderr, "     bazscan analyze -f bazaar_raw_YYYYMMDD_HHMMSS.json")
}
