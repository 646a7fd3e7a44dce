// Package storage provides the SQLite-backed store for projects, topics,
// references, and connections.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// ErrForeignKey indicates an insert or update referenced a row that does
// not exist. The store enforces referential integrity; it is not re-checked
// in application code.
var ErrForeignKey = errors.New("referenced row does not exist")

// Open opens or creates a SQLite database at the given path and brings its
// schema up to date.
func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// fkErr maps a driver-level foreign key violation to ErrForeignKey and
// leaves every other error untouched.
func fkErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}
	return err
}
