// Package vars contains the database variables such as dynamic table names
package vars

import (
	"github.com/metachris/mevscan/common"
)

var (
	tableBase = common.GetEnv("DB_TABLE_PREFIX", "mevscan")

	TableMigrations   = tableBase + "_migrations"
	TableTopSearchers = tableBase + "_top_searchers"
)
