// Package storage is the sqlite persistence layer. It owns the schema, maps
// rows to the typed records in internal/model, and exposes every query the
// analytics layers need. Constraint violations surface as ErrDuplicate or
// ErrConstraint, single-entity lookup misses as ErrNotFound.
package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

var (
	// ErrNotFound is returned by single-entity lookups with no matching row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a UNIQUE constraint.
	ErrDuplicate = errors.New("already exists")
	// ErrConstraint is returned on foreign-key or check violations.
	ErrConstraint = errors.New("constraint violation")
)

// DB wraps a sql.DB for the corner store.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path, applies the
// schema, and runs the column migration for databases created before the
// landing-zone fields existed.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate adds the zone_name/landing_x/landing_y columns to corners tables
// created by earlier schema versions. Runs once at open; the query layer
// assumes the full schema afterwards.
func migrate(conn *sql.DB) error {
	cols := map[string]string{
		"zone_name": "TEXT NOT NULL DEFAULT ''",
		"landing_x": "REAL",
		"landing_y": "REAL",
	}
	for name, def := range cols {
		var n int
		err := conn.QueryRow(
			"SELECT COUNT(1) FROM pragma_table_info('corners') WHERE name = ?", name,
		).Scan(&n)
		if err != nil {
			return err
		}
		if n == 0 {
			if _, err := conn.Exec(fmt.Sprintf("ALTER TABLE corners ADD COLUMN %s %s", name, def)); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapSQLErr translates sqlite constraint failures into the package sentinels
// so callers can branch without string matching.
func mapSQLErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
