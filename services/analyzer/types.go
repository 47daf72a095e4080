// Package analyzer loads MEV result tables from parquet files and computes
// searcher profit rankings from them.
package analyzer

// MEV type labels as written by the inspector into the bundles table.
const (
	MevTypeSandwich    = "Sandwich"
	MevTypeCexDex      = "CexDex"
	MevTypeJit         = "Jit"
	MevTypeJitSandwich = "JitSandwich"
	MevTypeLiquidation = "Liquidation"
	MevTypeAtomicArb   = "AtomicArb"
	MevTypeSearcherTx  = "SearcherTx"
	MevTypeUnknown     = "Unknown"
)

// BlockEntry is one row of the blocks table. The analyzer reads whatever
// subset of these columns is present, none are required.
type BlockEntry struct {
	BlockHash              string  `parquet:"block_hash,optional"`
	BlockNumber            uint64  `parquet:"block_number,optional"`
	EthPrice               float64 `parquet:"eth_price,optional"`
	BuilderAddress         string  `parquet:"builder_address,optional"`
	BuilderEthProfit       float64 `parquet:"builder_eth_profit,optional"`
	BuilderProfitUSD       float64 `parquet:"builder_profit_usd,optional"`
	CumulativeMevProfitUSD float64 `parquet:"cumulative_mev_profit_usd,optional"`
}

// BundleEntry is one row of the bundles table. MevType, MevContract and
// ProfitUSD are pointers because the inspector leaves them null for bundles
// it could not fully attribute.
type BundleEntry struct {
	BlockNumber uint64   `parquet:"block_number,optional"`
	MevTxIndex  uint64   `parquet:"mev_tx_index,optional"`
	TxHash      string   `parquet:"tx_hash,optional"`
	EOA         string   `parquet:"eoa,optional"`
	MevContract *string  `parquet:"mev_contract,optional"`
	ProfitUSD   *float64 `parquet:"profit_usd,optional"`
	BribeUSD    float64  `parquet:"bribe_usd,optional"`
	MevType     *string  `parquet:"mev_type,optional"`
}

// TopSearcherEntry is one row of the aggregated searcher ranking.
// MevContract is nil for the partition of bundles without a contract.
type TopSearcherEntry struct {
	MevContract    *string
	TotalProfitUSD float64
	NumBundles     uint64
}

// MevTypeSummaryEntry is one row of the per-MEV-type summary.
// MevType is nil for the partition of unlabeled bundles.
type MevTypeSummaryEntry struct {
	MevType        *string
	NumBundles     uint64
	TotalProfitUSD float64
	TotalBribeUSD  float64
}
