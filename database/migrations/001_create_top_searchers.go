// Package migrations contains all the migration files
package migrations

import (
	"github.com/metachris/mevscan/database/vars"
	migrate "github.com/rubenv/sql-migrate"
)

var migration001SQL = `CREATE TABLE IF NOT EXISTS ` + vars.TableTopSearchers + ` (
		id SERIAL PRIMARY KEY,
		inserted_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		rank INT NOT NULL,
		mev_contract TEXT,
		total_profit_usd DOUBLE PRECISION NOT NULL,
		num_bundles BIGINT NOT NULL,
		source_file TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS ` + vars.TableTopSearchers + `_contract_idx ON ` + vars.TableTopSearchers + `("mev_contract");`

var Migration001CreateTopSearchersTable = &migrate.Migration{
	Id: "001-create-top-searchers-table",
	Up: []string{migration001SQL},

	DisableTransactionUp:   false,
	DisableTransactionDown: true,
}
