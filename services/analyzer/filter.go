package analyzer

import (
	"github.com/metachris/mevscan/common"
)

// ExcludedMevTypes are dropped from the searcher ranking: SearcherTx covers
// plain searcher transactions without a classified MEV strategy, Unknown is
// the inspector's fallback label.
var ExcludedMevTypes = []string{MevTypeSearcherTx, MevTypeUnknown}

// FilterBundles returns a new slice without the bundles whose MevType is in
// ExcludedMevTypes, preserving the input order. Bundles with a null MevType
// are retained (null matches neither excluded label).
func FilterBundles(bundles []BundleEntry) []BundleEntry {
	filtered := make([]BundleEntry, 0, len(bundles))
	for _, bundle := range bundles {
		if bundle.MevType != nil && common.StringSliceContains(ExcludedMevTypes, *bundle.MevType) {
			continue
		}
		filtered = append(filtered, bundle)
	}
	return filtered
}

// BundlesForBlock returns the bundles landed in a specific block,
// preserving the input order.
func BundlesForBlock(bundles []BundleEntry, blockNumber uint64) []BundleEntry {
	res := []BundleEntry{}
	for _, bundle := range bundles {
		if bundle.BlockNumber == blockNumber {
			res = append(res, bundle)
		}
	}
	return res
}

// FindBlock returns the blocks-table row for a block number.
func FindBlock(blocks []BlockEntry, blockNumber uint64) (BlockEntry, bool) {
	for _, block := range blocks {
		if block.BlockNumber == blockNumber {
			return block, true
		}
	}
	return BlockEntry{}, false
}
