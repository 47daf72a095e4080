package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/metachris/mevscan/common"
	"github.com/metachris/mevscan/services/analyzer"
	"github.com/spf13/cobra"
)

var blockNumberStr string

func init() {
	rootCmd.AddCommand(inspectBlockCmd)
	inspectBlockCmd.Flags().StringVar(&blocksFile, "blocks", common.DefaultBlocksFile, "blocks parquet file")
	inspectBlockCmd.Flags().StringVar(&bundlesFile, "bundles", common.DefaultBundlesFile, "bundles parquet file")
	inspectBlockCmd.Flags().StringVar(&blockNumberStr, "block-number", "", "the block to inspect")
}

var inspectBlockCmd = &cobra.Command{
	Use:   "inspect-block",
	Short: "Inspect the MEV activity of a single block",
	Run: func(cmd *cobra.Command, args []string) {
		if blockNumberStr == "" {
			log.Fatalf("Please provide a block number")
		}

		blockNumberStr = strings.ReplaceAll(blockNumberStr, ",", "")
		blockNumber, err := strconv.ParseUint(blockNumberStr, 10, 64)
		if err != nil {
			log.WithError(err).Fatalf("failed converting block number to uint")
		}

		blocks := loadBlocksOrExit(blocksFile)
		bundles := loadBundlesOrExit(bundlesFile)

		block, found := analyzer.FindBlock(blocks, blockNumber)
		if !found {
			log.Warnf("block %d not found in %s", blockNumber, blocksFile)
		} else {
			fmt.Printf("Block %d (%s):\n", block.BlockNumber, block.BlockHash)
			fmt.Printf("- ETH price: %s USD\n", common.USDString(block.EthPrice))
			fmt.Printf("- builder: %s (profit: %s USD / %.4f ETH)\n", block.BuilderAddress, common.USDString(block.BuilderProfitUSD), block.BuilderEthProfit)
			fmt.Printf("- cumulative MEV profit: %s USD\n", common.USDString(block.CumulativeMevProfitUSD))
		}

		blockBundles := analyzer.BundlesForBlock(bundles, blockNumber)
		if len(blockBundles) == 0 {
			log.Infof("no bundles in block %d", blockNumber)
			return
		}

		fmt.Printf("\nBundles in block %d:\n", blockNumber)
		fmt.Println(analyzer.BundlesTable(blockBundles))

		fmt.Println("Searchers in this block:")
		fmt.Println(analyzer.TopSearchersTable(analyzer.TopSearchers(analyzer.FilterBundles(blockBundles), 0)))
	},
}
