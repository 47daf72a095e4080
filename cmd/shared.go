package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/metachris/mevscan/common"
	"github.com/metachris/mevscan/services/analyzer"
)

var (
	Version = "dev" // is set during build process
	log     = common.Logger

	blocksFile  string
	bundlesFile string
)

// loadBundlesOrExit loads the bundles table, terminating the run on any
// file or schema error.
func loadBundlesOrExit(path string) []analyzer.BundleEntry {
	bundles, err := analyzer.LoadBundles(path)
	if err != nil {
		log.WithError(err).Fatalf("failed loading bundles from %s", path)
	}
	log.Infof("loaded %s bundles from %s (%s)", common.PrettyInt(uint64(len(bundles))), path, common.HumanBytes(analyzer.FileSize(path)))
	return bundles
}

// loadBlocksOrExit loads the blocks table, terminating the run on any
// file error.
func loadBlocksOrExit(path string) []analyzer.BlockEntry {
	blocks, err := analyzer.LoadBlocks(path)
	if err != nil {
		log.WithError(err).Fatalf("failed loading blocks from %s", path)
	}
	log.Infof("loaded %s blocks from %s (%s)", humanize.Comma(int64(len(blocks))), path, common.HumanBytes(analyzer.FileSize(path)))
	return blocks
}
