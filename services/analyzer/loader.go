package analyzer

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

var ErrMissingColumn = errors.New("missing expected column")

// Columns the bundles table must provide. The blocks table is unconstrained.
var requiredBundleColumns = []string{"mev_type", "mev_contract", "profit_usd"}

// LoadBlocks reads the full blocks table from a parquet file.
func LoadBlocks(path string) ([]BlockEntry, error) {
	return readTable[BlockEntry](path, nil)
}

// LoadBundles reads the full bundles table from a parquet file. It fails
// with ErrMissingColumn if the file schema lacks any of the columns the
// filter and aggregation steps depend on.
func LoadBundles(path string) ([]BundleEntry, error) {
	return readTable[BundleEntry](path, requiredBundleColumns)
}

func readTable[T any](path string, requiredColumns []string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("invalid parquet file %s: %w", path, err)
	}

	for _, column := range requiredColumns {
		if _, found := pf.Schema().Lookup(column); !found {
			return nil, fmt.Errorf("%s: %w: %s", path, ErrMissingColumn, column)
		}
	}

	rows, err := parquet.Read[T](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", path, err)
	}
	return rows, nil
}

// FileSize returns the size of a file in bytes, 0 if it cannot be read.
func FileSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(info.Size())
}
