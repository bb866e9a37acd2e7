package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soopyv/bazscan/internal/scan"
	"github.com/soopyv/bazscan/internal/scheduler"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the scan on a schedule",
	Long: `Runs the analyze pipeline on a cron schedule. Every run fetches a fresh
snapshot and is fully independent; artifacts accumulate in the output
directory.

Schedule uses six-field cron expressions (with seconds) or descriptors:
  "0 0 * * * *"  - every hour on the hour
  "@every 15m"   - every fifteen minutes

Example:
  go run ./cmd/bazscan watch --schedule "@every 15m"
  go run ./cmd/bazscan watch --schedule "@hourly" -m quick-buy-sell-percent`,
	RunE: runWatch,
}

var (
	watchFlags    = defaultScanFlags()
	watchSchedule string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "@every 15m", "cron schedule for scan runs")
	watchCmd.Flags().StringVarP(&watchFlags.method, "method", "m", watchFlags.method, "profit calculation method used for ranking")
	watchCmd.Flags().Int64VarP(&watchFlags.minVolume, "min-volume", "v", watchFlags.minVolume, "minimum combined volume to consider")
	watchCmd.Flags().IntVarP(&watchFlags.topN, "top-n", "n", watchFlags.topN, "number of top items to report")
	watchCmd.Flags().Float64VarP(&watchFlags.minPrice, "min-price", "p", watchFlags.minPrice, "minimum buy price to consider")
	watchCmd.Flags().Float64Var(&watchFlags.maxPrice, "max-price", watchFlags.maxPrice, "maximum buy price to consider (0 = unbounded)")
	watchCmd.Flags().BoolVar(&watchFlags.positive, "positive", false, "keep only items with a positive score")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	method, criteria, presetHash, err := resolveScanConfig(watchFlags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	job := scan.NewJob(a.runner, scan.Options{
		Method:         method,
		Criteria:       criteria,
		PresetHash:     presetHash,
		WriteArtifacts: true,
		Out:            os.Stdout,
	}, watchSchedule)

	sched := scheduler.New(a.log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	// Kick off an immediate first run instead of waiting a full interval.
	if err := sched.RunJob(job.Name()); err != nil {
		return err
	}

	a.log.WithField("schedule", watchSchedule).Info("Watch mode running, Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return nil
}
