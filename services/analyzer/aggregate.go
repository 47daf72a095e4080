package analyzer

import (
	"sort"
)

// TopSearchers groups bundles by mev_contract, sums profit_usd per contract
// and returns the ranking sorted by total profit (descending), truncated to
// at most limit rows (0 means no limit).
//
// Null handling: bundles without a contract form their own partition, and a
// null profit_usd contributes 0 to its partition's total. Ties keep the
// first-seen contract order (the sort is stable and partitions are created
// in input order).
func TopSearchers(bundles []BundleEntry, limit int) []TopSearcherEntry {
	entries := []TopSearcherEntry{}
	indexByContract := map[string]int{}
	nullIndex := -1

	for _, bundle := range bundles {
		var i int
		if bundle.MevContract == nil {
			if nullIndex == -1 {
				nullIndex = len(entries)
				entries = append(entries, TopSearcherEntry{})
			}
			i = nullIndex
		} else {
			var found bool
			i, found = indexByContract[*bundle.MevContract]
			if !found {
				i = len(entries)
				indexByContract[*bundle.MevContract] = i
				entries = append(entries, TopSearcherEntry{MevContract: bundle.MevContract})
			}
		}

		if bundle.ProfitUSD != nil {
			entries[i].TotalProfitUSD += *bundle.ProfitUSD
		}
		entries[i].NumBundles++
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].TotalProfitUSD > entries[b].TotalProfitUSD
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// MevTypeSummary groups bundles by mev_type and sums profits and bribes per
// type, sorted by total profit (descending), ties in first-seen order.
// Unlabeled bundles (null mev_type) form their own row.
func MevTypeSummary(bundles []BundleEntry) []MevTypeSummaryEntry {
	entries := []MevTypeSummaryEntry{}
	indexByType := map[string]int{}
	nullIndex := -1

	for _, bundle := range bundles {
		var i int
		if bundle.MevType == nil {
			if nullIndex == -1 {
				nullIndex = len(entries)
				entries = append(entries, MevTypeSummaryEntry{})
			}
			i = nullIndex
		} else {
			var found bool
			i, found = indexByType[*bundle.MevType]
			if !found {
				i = len(entries)
				indexByType[*bundle.MevType] = i
				entries = append(entries, MevTypeSummaryEntry{MevType: bundle.MevType})
			}
		}

		if bundle.ProfitUSD != nil {
			entries[i].TotalProfitUSD += *bundle.ProfitUSD
		}
		entries[i].TotalBribeUSD += bundle.BribeUSD
		entries[i].NumBundles++
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].TotalProfitUSD > entries[b].TotalProfitUSD
	})
	return entries
}
