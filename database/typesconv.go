package database

import (
	"database/sql"

	"github.com/metachris/mevscan/services/analyzer"
)

// TopSearcherEntryFromRanking converts one analyzer ranking row into a
// database entry. A nil contract becomes a SQL NULL.
func TopSearcherEntryFromRanking(rank int, sourceFile string, entry analyzer.TopSearcherEntry) *TopSearcherEntry {
	contract := sql.NullString{}
	if entry.MevContract != nil {
		contract = NewNullString(*entry.MevContract)
	}
	return &TopSearcherEntry{
		Rank:           int64(rank),
		MevContract:    contract,
		TotalProfitUSD: entry.TotalProfitUSD,
		NumBundles:     int64(entry.NumBundles),
		SourceFile:     sourceFile,
	}
}

// TopSearcherEntriesFromRanking converts a full analyzer ranking.
func TopSearcherEntriesFromRanking(sourceFile string, entries []analyzer.TopSearcherEntry) []*TopSearcherEntry {
	res := make([]*TopSearcherEntry, len(entries))
	for i, entry := range entries {
		res[i] = TopSearcherEntryFromRanking(i+1, sourceFile, entry)
	}
	return res
}
