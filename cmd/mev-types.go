package cmd

import (
	"fmt"

	"github.com/metachris/mevscan/common"
	"github.com/metachris/mevscan/services/analyzer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mevTypesCmd)
	mevTypesCmd.Flags().StringVar(&bundlesFile, "bundles", common.DefaultBundlesFile, "bundles parquet file")
}

var mevTypesCmd = &cobra.Command{
	Use:   "mev-types",
	Short: "Summarize bundle counts, profits and bribes per MEV type",
	Run: func(cmd *cobra.Command, args []string) {
		bundles := loadBundlesOrExit(bundlesFile)

		// the summary covers the unfiltered table, SearcherTx and
		// Unknown included
		summary := analyzer.MevTypeSummary(bundles)

		fmt.Printf("MEV types across %s bundles:\n", common.PrettyInt(uint64(len(bundles))))
		fmt.Println(analyzer.MevTypeSummaryTable(summary))
	},
}
