package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopSearchers(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xa", MevTypeAtomicArb, 10),
		testBundle("0xa", MevTypeAtomicArb, 5),
		testBundle("0xb", MevTypeLiquidation, 100),
		testBundle("0xc", MevTypeSearcherTx, 1000),
		testBundle("0xd", MevTypeUnknown, 500),
	}

	entries := TopSearchers(FilterBundles(bundles), 30)
	require.Len(t, entries, 2)
	require.Equal(t, "0xb", *entries[0].MevContract)
	require.Equal(t, float64(100), entries[0].TotalProfitUSD)
	require.Equal(t, "0xa", *entries[1].MevContract)
	require.Equal(t, float64(15), entries[1].TotalProfitUSD)
	require.Equal(t, uint64(2), entries[1].NumBundles)
}

func TestTopSearchersEmpty(t *testing.T) {
	require.Empty(t, TopSearchers(nil, 30))
	require.Empty(t, TopSearchers([]BundleEntry{}, 30))
}

func TestTopSearchersLimit(t *testing.T) {
	bundles := []BundleEntry{}
	for i := 0; i < 35; i++ {
		bundles = append(bundles, testBundle(fmt.Sprintf("0x%02d", i), MevTypeSandwich, float64(i)))
	}

	entries := TopSearchers(bundles, 30)
	require.Len(t, entries, 30)

	// fewer partitions than the limit
	entries = TopSearchers(bundles[:5], 30)
	require.Len(t, entries, 5)

	// limit 0 means no truncation
	entries = TopSearchers(bundles, 0)
	require.Len(t, entries, 35)
}

func TestTopSearchersSorted(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xa", MevTypeSandwich, 1),
		testBundle("0xb", MevTypeSandwich, -5),
		testBundle("0xc", MevTypeSandwich, 100),
		testBundle("0xa", MevTypeSandwich, 3),
	}

	entries := TopSearchers(bundles, 30)
	for i := 1; i < len(entries); i++ {
		require.GreaterOrEqual(t, entries[i-1].TotalProfitUSD, entries[i].TotalProfitUSD)
	}
}

func TestTopSearchersTiesKeepFirstSeenOrder(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xb", MevTypeSandwich, 10),
		testBundle("0xa", MevTypeSandwich, 10),
		testBundle("0xc", MevTypeSandwich, 10),
	}

	entries := TopSearchers(bundles, 30)
	require.Len(t, entries, 3)
	require.Equal(t, "0xb", *entries[0].MevContract)
	require.Equal(t, "0xa", *entries[1].MevContract)
	require.Equal(t, "0xc", *entries[2].MevContract)
}

func TestTopSearchersNullHandling(t *testing.T) {
	bundles := []BundleEntry{
		{MevType: strPtr(MevTypeSandwich), ProfitUSD: f64Ptr(7)},  // null contract
		{MevType: strPtr(MevTypeSandwich), ProfitUSD: f64Ptr(2)},  // null contract
		{MevContract: strPtr("0xa"), MevType: strPtr(MevTypeJit)}, // null profit
		testBundle("0xa", MevTypeJit, 3),
	}

	entries := TopSearchers(bundles, 30)
	require.Len(t, entries, 2)

	// null contracts form their own partition, null profits sum as 0
	require.Nil(t, entries[0].MevContract)
	require.Equal(t, float64(9), entries[0].TotalProfitUSD)
	require.Equal(t, uint64(2), entries[0].NumBundles)
	require.Equal(t, "0xa", *entries[1].MevContract)
	require.Equal(t, float64(3), entries[1].TotalProfitUSD)
	require.Equal(t, uint64(2), entries[1].NumBundles)
}

func TestTopSearchersSumInvariant(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xa", MevTypeSandwich, 1.5),
		testBundle("0xb", MevTypeSandwich, -2.25),
		testBundle("0xa", MevTypeJit, 10),
		testBundle("0xc", MevTypeLiquidation, 0),
	}

	inputSum := float64(0)
	for _, bundle := range bundles {
		inputSum += *bundle.ProfitUSD
	}

	outputSum := float64(0)
	for _, entry := range TopSearchers(bundles, 30) {
		outputSum += entry.TotalProfitUSD
	}
	require.InDelta(t, inputSum, outputSum, 1e-9)
}

func TestTopSearchersIdempotent(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xa", MevTypeSandwich, 10),
		testBundle("0xb", MevTypeSandwich, 100),
		testBundle("0xa", MevTypeSandwich, 5),
	}
	entries := TopSearchers(bundles, 30)

	// re-aggregating the output (totals as profits, contracts already
	// unique) returns the same rows unchanged
	again := []BundleEntry{}
	for _, entry := range entries {
		total := entry.TotalProfitUSD
		again = append(again, BundleEntry{MevContract: entry.MevContract, ProfitUSD: &total})
	}
	reaggregated := TopSearchers(again, 30)
	require.Len(t, reaggregated, len(entries))
	for i := range entries {
		require.Equal(t, entries[i].MevContract, reaggregated[i].MevContract)
		require.Equal(t, entries[i].TotalProfitUSD, reaggregated[i].TotalProfitUSD)
	}
}

func TestMevTypeSummary(t *testing.T) {
	bundles := []BundleEntry{
		testBundle("0xa", MevTypeSandwich, 10),
		testBundle("0xb", MevTypeSandwich, 5),
		testBundle("0xc", MevTypeLiquidation, 100),
		{MevContract: strPtr("0xd"), ProfitUSD: f64Ptr(1)}, // null mev_type
	}
	bundles[0].BribeUSD = 2
	bundles[2].BribeUSD = 3

	entries := MevTypeSummary(bundles)
	require.Len(t, entries, 3)

	require.Equal(t, MevTypeLiquidation, *entries[0].MevType)
	require.Equal(t, float64(100), entries[0].TotalProfitUSD)
	require.Equal(t, float64(3), entries[0].TotalBribeUSD)

	require.Equal(t, MevTypeSandwich, *entries[1].MevType)
	require.Equal(t, float64(15), entries[1].TotalProfitUSD)
	require.Equal(t, uint64(2), entries[1].NumBundles)

	require.Nil(t, entries[2].MevType)
	require.Equal(t, float64(1), entries[2].TotalProfitUSD)
}
