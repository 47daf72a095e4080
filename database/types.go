package database

import (
	"database/sql"
	"time"
)

func NewNullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  true,
	}
}

type TopSearcherEntry struct {
	ID         int64     `db:"id"`
	InsertedAt time.Time `db:"inserted_at"`

	Rank           int64          `db:"rank"`
	MevContract    sql.NullString `db:"mev_contract"`
	TotalProfitUSD float64        `db:"total_profit_usd"`
	NumBundles     int64          `db:"num_bundles"`
	SourceFile     string         `db:"source_file"`
}
