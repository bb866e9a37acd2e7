package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soopyv/bazscan/internal/market"
)

// methodsCmd represents the methods command
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the supported scoring methods",
	Run:   runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) {
	fmt.Println("Supported scoring methods:")
	fmt.Println()
	for _, m := range market.Methods() {
		unit := "coins"
		if m.IsPercent() {
			unit = "percent"
		}
		fmt.Printf("  %-32s [%s]  %s\n", m, unit, m.Description())
	}
}
