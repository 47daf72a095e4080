package cmd

import (
	"fmt"

	"github.com/metachris/mevscan/common"
	"github.com/metachris/mevscan/database"
	"github.com/metachris/mevscan/services/analyzer"
	"github.com/spf13/cobra"
)

var (
	topN        int
	outCSV      string
	saveDB      bool
	postgresDSN string
)

func init() {
	rootCmd.AddCommand(topSearchersCmd)
	topSearchersCmd.Flags().StringVar(&blocksFile, "blocks", common.DefaultBlocksFile, "blocks parquet file")
	topSearchersCmd.Flags().StringVar(&bundlesFile, "bundles", common.DefaultBundlesFile, "bundles parquet file")
	topSearchersCmd.Flags().IntVar(&topN, "top", 30, "number of searchers to show")
	topSearchersCmd.Flags().StringVar(&outCSV, "out-csv", "", "also write the ranking to this CSV file")
	topSearchersCmd.Flags().BoolVar(&saveDB, "save-db", false, "also save the ranking to Postgres")
	topSearchersCmd.Flags().StringVar(&postgresDSN, "postgres", common.DefaultPostgresDSN, "postgres DSN (used with --save-db)")
}

var topSearchersCmd = &cobra.Command{
	Use:   "top-searchers",
	Short: "Rank searchers by PnL across the bundles table",
	Run: func(cmd *cobra.Command, args []string) {
		// the ranking only needs the bundles table, but a broken
		// blocks export should still fail the run
		_ = loadBlocksOrExit(blocksFile)
		bundles := loadBundlesOrExit(bundlesFile)

		filtered := analyzer.FilterBundles(bundles)
		log.Infof("%s bundles after dropping %v", common.PrettyInt(uint64(len(filtered))), analyzer.ExcludedMevTypes)

		ranking := analyzer.TopSearchers(filtered, topN)

		fmt.Printf("Top %d Searchers by PNL (excluding SearcherTx and Unknown MEV types):\n", topN)
		fmt.Println(analyzer.TopSearchersTable(ranking))

		if outCSV != "" {
			if err := analyzer.WriteTopSearchersCSV(outCSV, ranking); err != nil {
				log.WithError(err).Fatalf("failed writing CSV to %s", outCSV)
			}
			log.Infof("wrote %d rows to %s", len(ranking), outCSV)
		}

		if saveDB {
			db := database.MustConnectPostgres(log, postgresDSN)
			defer db.Close()
			entries := database.TopSearcherEntriesFromRanking(bundlesFile, ranking)
			if err := db.SaveTopSearchers(entries); err != nil {
				log.WithError(err).Fatalf("failed saving ranking to database")
			}
			log.Infof("saved %d rows to postgres", len(entries))
		}
	},
}
