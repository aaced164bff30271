// Package sqlite stores behavior events and catalogs in a local SQLite file
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/pkg/errors"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/seed"
)

//go:embed schema.sql
var schemaSQL string

// seededVersion is stored in PRAGMA user_version once the catalogs have been
// seeded, so emptying a catalog later does not bring the defaults back.
const seededVersion = 1

// DB implements both repository.EventRepository and
// repository.CatalogRepository on one SQLite database.
type DB struct {
	db *sql.DB
}

var (
	_ repository.EventRepository   = (*DB)(nil)
	_ repository.CatalogRepository = (*DB)(nil)
)

// Open opens (creating if needed) the database at path, applies the schema
// and seeds the catalogs the first time the file is set up.
func Open(ctx context.Context, path string, catalogs seed.Catalogs) (*DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path required")
	}

	// modernc.org/sqlite takes each pragma as a _pragma= parameter.
	sqliteDB, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(0)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open db at %s", path)
	}

	// One connection: writes serialize anyway, and :memory: databases live
	// per connection.
	sqliteDB.SetMaxOpenConns(1)
	sqliteDB.SetMaxIdleConns(1)
	sqliteDB.SetConnMaxLifetime(0)
	sqliteDB.SetConnMaxIdleTime(0)

	d := &DB{db: sqliteDB}
	if err := d.migrate(ctx); err != nil {
		sqliteDB.Close()
		return nil, err
	}
	if err := d.seed(ctx, catalogs); err != nil {
		sqliteDB.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, schemaSQL); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	return nil
}

func (d *DB) seed(ctx context.Context, catalogs seed.Catalogs) error {
	tables := []struct {
		name  string
		names []string
	}{
		{behaviorTypesTable, catalogs.BehaviorTypes},
		{triggerTypesTable, catalogs.TriggerTypes},
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var version int
	if err := tx.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return errors.Wrap(err, "failed to read user_version")
	}
	if version >= seededVersion {
		return nil
	}

	// files created before the version marker may already hold catalogs
	for _, t := range tables {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.name).Scan(&count); err != nil {
			return errors.Wrapf(err, "failed to count %s", t.name)
		}
		if count > 0 {
			continue
		}
		for _, name := range t.names {
			if _, err := tx.ExecContext(ctx, "INSERT INTO "+t.name+" (name, is_custom) VALUES (?, 0)", name); err != nil {
				return errors.Wrapf(err, "failed to seed %s", t.name)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", seededVersion)); err != nil {
		return errors.Wrap(err, "failed to mark catalogs seeded")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
