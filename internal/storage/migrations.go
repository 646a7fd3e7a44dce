package storage

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered, idempotent list applied at open. The current
// schema version is tracked in the _meta table; databases created under an
// older (narrower) schema are upgraded additively, never rewritten.
var migrations = []struct {
	name  string
	apply func(*sql.DB) error
}{
	{"base tables", createBaseTables},
	{"paper_references.citation_count", addColumn("paper_references", "citation_count", "INTEGER DEFAULT 0")},
	{"paper_references.publication_year", addColumn("paper_references", "publication_year", "INTEGER")},
	{"paper_references.bibtex", addColumn("paper_references", "bibtex", "TEXT DEFAULT ''")},
	{"topics.grid_width", addColumn("topics", "grid_width", "INTEGER")},
	{"topics.grid_height", addColumn("topics", "grid_height", "INTEGER")},
}

// migrate brings the schema up to date, recording progress in _meta.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _meta (
		key TEXT PRIMARY KEY,
		value TEXT
	)`); err != nil {
		return fmt.Errorf("creating _meta table: %w", err)
	}

	version, err := schemaVersion(db)
	if err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		m := migrations[i]
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", i+1, m.name, err)
		}
		if err := setSchemaVersion(db, i+1); err != nil {
			return fmt.Errorf("recording schema version %d: %w", i+1, err)
		}
	}

	return nil
}

// schemaVersion returns the number of migrations already applied.
func schemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	err := db.QueryRow("SELECT value FROM _meta WHERE key = 'schema_version'").Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}

func setSchemaVersion(db *sql.DB, v int) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('schema_version', ?)`, v)
	return err
}

// createBaseTables creates the core tables. All child->parent foreign keys
// cascade on delete; the store, not application code, maintains referential
// integrity transitively.
func createBaseTables(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS topics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			position_x REAL DEFAULT 0,
			position_y REAL DEFAULT 0,
			color TEXT DEFAULT '#007bff',
			FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_topics_project ON topics(project_id);

		CREATE TABLE IF NOT EXISTS paper_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			doi TEXT DEFAULT '',
			authors TEXT DEFAULT '',
			abstract TEXT DEFAULT '',
			notes TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (topic_id) REFERENCES topics (id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_refs_topic ON paper_references(topic_id);

		CREATE TABLE IF NOT EXISTS reference_connections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_reference_id INTEGER NOT NULL,
			target_reference_id INTEGER NOT NULL,
			description TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (source_reference_id) REFERENCES paper_references (id) ON DELETE CASCADE,
			FOREIGN KEY (target_reference_id) REFERENCES paper_references (id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_connections_source ON reference_connections(source_reference_id);
		CREATE INDEX IF NOT EXISTS idx_connections_target ON reference_connections(target_reference_id);
	`
	_, err := db.Exec(schema)
	return err
}

// addColumn returns a migration that adds a column if it is not already
// present. SQLite lacks ALTER TABLE ... ADD COLUMN IF NOT EXISTS, so the
// existing columns are probed via PRAGMA table_info first.
func addColumn(table, column, colDef string) func(*sql.DB) error {
	return func(db *sql.DB) error {
		exists, err := columnExists(db, table, column)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, colDef))
		return err
	}
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
