package report

import (
	"fmt"
	"io"

	"github.com/soopyv/bazscan/internal/market"
)

var (
	tableColumns = []string{"Item ID", "Buy Price", "Sell Price", "", "Volume"}
	tableWidths  = []int{28, 12, 12, 15, 10}
)

// WriteTable renders a ranked result as a console table. Scores are rounded
// to two decimals here, at presentation time only.
func WriteTable(w io.Writer, result *market.Result) {
	if len(result.Items) == 0 {
		fmt.Fprintln(w, "No profit opportunities found.")
		fmt.Fprintf(w, "Active criteria: min volume %d, min price %.2f, max price %s, top %d\n",
			result.Criteria.MinVolume, result.Criteria.MinPrice,
			maxPriceLabel(result.Criteria), result.Criteria.TopN)
		fmt.Fprintln(w, "Relax the filters to widen the search.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== TOP PROFIT OPPORTUNITIES =====")
	fmt.Fprintf(w, "Method: %s\n\n", result.Method)

	columns := make([]string, len(tableColumns))
	copy(columns, tableColumns)
	if result.Method.IsPercent() {
		columns[3] = "Profit %"
	} else {
		columns[3] = "Margin (coins)"
	}

	printRow(w, columns)
	printSeparator(w)

	for _, item := range result.Items {
		value := fmt.Sprintf("%.2f", item.Score)
		if result.Method.IsPercent() {
			value += "%"
		}
		printRow(w, []string{
			item.ID,
			fmt.Sprintf("%.2f", item.BuyPrice),
			fmt.Sprintf("%.2f", item.SellPrice),
			value,
			fmt.Sprintf("%d", item.Volume),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Considered %d items, skipped %d malformed entries.\n",
		result.Considered, result.Skipped)
}

func maxPriceLabel(c market.FilterCriteria) string {
	if c.Unbounded() {
		return "unbounded"
	}
	return fmt.Sprintf("%.2f", c.MaxPrice)
}

func printRow(w io.Writer, values []string) {
	for i, val := range values {
		fmt.Fprintf(w, "%-*s", tableWidths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}

func printSeparator(w io.Writer) {
	total := 0
	for i, width := range tableWidths {
		total += width
		if i < len(tableWidths)-1 {
			total += 2
		}
	}
	for i := 0; i < total; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w)
}
