// Package database exposes the postgres database
package database

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/metachris/mevscan/database/migrations"
	"github.com/metachris/mevscan/database/vars"
	migrate "github.com/rubenv/sql-migrate"
)

type DatabaseService struct {
	DB *sqlx.DB
}

func NewDatabaseService(dsn string) (*DatabaseService, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.DB.SetMaxOpenConns(50)
	db.DB.SetMaxIdleConns(10)
	db.DB.SetConnMaxIdleTime(0)

	migrate.SetTable(vars.TableMigrations)
	_, err = migrate.Exec(db.DB, "postgres", migrations.Migrations, migrate.Up)
	if err != nil {
		return nil, err
	}

	return &DatabaseService{
		DB: db,
	}, nil
}

func (s *DatabaseService) Close() error {
	return s.DB.Close()
}

// SaveTopSearchers writes one ranking snapshot to the database.
func (s *DatabaseService) SaveTopSearchers(entries []*TopSearcherEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `INSERT INTO ` + vars.TableTopSearchers + `
		(rank, mev_contract, total_profit_usd, num_bundles, source_file) VALUES
		(:rank, :mev_contract, :total_profit_usd, :num_bundles, :source_file)`
	_, err := s.DB.NamedExec(query, entries)
	return err
}

// GetLatestTopSearchers returns the most recently inserted ranking snapshot.
func (s *DatabaseService) GetLatestTopSearchers() (res []*TopSearcherEntry, err error) {
	query := `SELECT id, inserted_at, rank, mev_contract, total_profit_usd, num_bundles, source_file
		FROM ` + vars.TableTopSearchers + `
		WHERE inserted_at = (SELECT MAX(inserted_at) FROM ` + vars.TableTopSearchers + `)
		ORDER BY rank`
	err = s.DB.Select(&res, query)
	return res, err
}
