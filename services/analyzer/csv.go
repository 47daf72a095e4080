package analyzer

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var TopSearchersCSVFields = []string{"rank", "mev_contract", "total_profit_usd", "num_bundles"}

// ToCSVFields returns the CSV field values for one ranking row. A null
// contract is written as an empty field.
func (e *TopSearcherEntry) ToCSVFields(rank int) []string {
	contract := ""
	if e.MevContract != nil {
		contract = *e.MevContract
	}
	return []string{
		strconv.Itoa(rank),
		contract,
		strconv.FormatFloat(e.TotalProfitUSD, 'f', -1, 64),
		strconv.FormatUint(e.NumBundles, 10),
	}
}

func (e *TopSearcherEntry) ToCSVLine(rank int, separator string) string {
	return strings.Join(e.ToCSVFields(rank), separator)
}

// WriteTopSearchersCSV writes the ranking to a CSV file (header included),
// replacing the file if it exists.
func WriteTopSearchersCSV(path string, entries []TopSearcherEntry) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprint(f, strings.Join(TopSearchersCSVFields, ",")+"\n"); err != nil {
		return err
	}
	for i, entry := range entries {
		if _, err := fmt.Fprint(f, entry.ToCSVLine(i+1, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
