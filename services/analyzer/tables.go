package analyzer

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer for pretty printing numbers
var printer = message.NewPrinter(language.English)

// Rendering for null contract / type partitions.
const nullLabel = "<none>"

func labelOrNull(s *string) string {
	if s == nil {
		return nullLabel
	}
	return *s
}

// TopSearchersTable renders the searcher ranking as a text table.
func TopSearchersTable(entries []TopSearcherEntry) string {
	rows := [][]string{}
	for i, entry := range entries {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			labelOrNull(entry.MevContract),
			printer.Sprintf("%.2f", entry.TotalProfitUSD),
			printer.Sprintf("%d", entry.NumBundles),
		})
	}
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"#", "MEV contract", "Total profit (USD)", "Bundles"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
	return tableString.String()
}

// MevTypeSummaryTable renders the per-MEV-type summary as a text table.
func MevTypeSummaryTable(entries []MevTypeSummaryEntry) string {
	rows := [][]string{}
	for _, entry := range entries {
		rows = append(rows, []string{
			labelOrNull(entry.MevType),
			printer.Sprintf("%d", entry.NumBundles),
			printer.Sprintf("%.2f", entry.TotalProfitUSD),
			printer.Sprintf("%.2f", entry.TotalBribeUSD),
		})
	}
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"MEV type", "Bundles", "Total profit (USD)", "Total bribes (USD)"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
	return tableString.String()
}

// BundlesTable renders per-bundle details (used by inspect-block).
func BundlesTable(bundles []BundleEntry) string {
	rows := [][]string{}
	for _, bundle := range bundles {
		profit := "-"
		if bundle.ProfitUSD != nil {
			profit = printer.Sprintf("%.2f", *bundle.ProfitUSD)
		}
		rows = append(rows, []string{
			fmt.Sprint(bundle.MevTxIndex),
			bundle.TxHash,
			labelOrNull(bundle.MevType),
			labelOrNull(bundle.MevContract),
			profit,
			printer.Sprintf("%.2f", bundle.BribeUSD),
		})
	}
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Tx index", "Tx hash", "MEV type", "MEV contract", "Profit (USD)", "Bribe (USD)"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
	return tableString.String()
}
