package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/litcanvas/litcanvas/internal/connection"
	"github.com/litcanvas/litcanvas/internal/reference"
	"github.com/litcanvas/litcanvas/internal/topic"
)

// testDB opens a fresh database in a temp directory.
func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// mustProject creates a project or fails the test.
func mustProject(t *testing.T, db *DB, title string) int64 {
	t.Helper()
	id, err := db.CreateProject(title)
	if err != nil {
		t.Fatalf("CreateProject(%q) error = %v", title, err)
	}
	return id
}

// mustTopic creates a topic with defaults or fails the test.
func mustTopic(t *testing.T, db *DB, projectID int64, name string) int64 {
	t.Helper()
	tp := &topic.Topic{ProjectID: projectID, Name: name}
	tp.ApplyDefaults()
	id, err := db.CreateTopic(tp)
	if err != nil {
		t.Fatalf("CreateTopic(%q) error = %v", name, err)
	}
	return id
}

// mustReference creates a reference with the given title or fails the test.
func mustReference(t *testing.T, db *DB, topicID int64, title string) int64 {
	t.Helper()
	id, err := db.CreateReference(&reference.Reference{TopicID: topicID, Title: title})
	if err != nil {
		t.Fatalf("CreateReference(%q) error = %v", title, err)
	}
	return id
}

// mustConnection creates a connection or fails the test.
func mustConnection(t *testing.T, db *DB, sourceID, targetID int64) int64 {
	t.Helper()
	id, err := db.CreateConnection(&connection.Connection{
		SourceReferenceID: sourceID,
		TargetReferenceID: targetID,
	})
	if err != nil {
		t.Fatalf("CreateConnection(%d, %d) error = %v", sourceID, targetID, err)
	}
	return id
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	id := mustProject(t, db, "Phage Display")
	db.Close()

	// Reopen against the already-initialized store: no data loss.
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() reopen error = %v", err)
	}
	defer db.Close()

	p, err := db.GetProjectByID(id)
	if err != nil {
		t.Fatalf("GetProjectByID() error = %v", err)
	}
	if p == nil || p.Title != "Phage Display" {
		t.Errorf("project after reopen = %+v, want title %q", p, "Phage Display")
	}
}

func TestOpenUpgradesNarrowSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// Simulate a database created under the original narrow schema: no
	// citation_count, publication_year, bibtex, or grid columns.
	raw, err := sql.Open("sqlite", "file:"+dbPath)
	if err != nil {
		t.Fatalf("opening raw db: %v", err)
	}
	narrow := `
		CREATE TABLE projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE topics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			position_x REAL DEFAULT 0,
			position_y REAL DEFAULT 0,
			color TEXT DEFAULT '#007bff',
			FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
		);
		CREATE TABLE paper_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			doi TEXT,
			authors TEXT,
			abstract TEXT,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (topic_id) REFERENCES topics (id) ON DELETE CASCADE
		);
		INSERT INTO projects (title) VALUES ('Legacy');
	`
	if _, err := raw.Exec(narrow); err != nil {
		t.Fatalf("creating narrow schema: %v", err)
	}
	raw.Close()

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on narrow db error = %v", err)
	}
	defer db.Close()

	// Old data survives.
	projects, err := db.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Legacy" {
		t.Errorf("projects after upgrade = %+v, want one titled %q", projects, "Legacy")
	}

	// The added columns are usable.
	topicID := mustTopic(t, db, projects[0].ID, "Upgraded")
	year := int64(2021)
	refID, err := db.CreateReference(&reference.Reference{
		TopicID:         topicID,
		Title:           "Extended fields",
		CitationCount:   7,
		PublicationYear: &year,
		BibTeX:          "@article{x}",
	})
	if err != nil {
		t.Fatalf("CreateReference() after upgrade error = %v", err)
	}
	r, err := db.GetReferenceByID(refID)
	if err != nil {
		t.Fatalf("GetReferenceByID() error = %v", err)
	}
	if r.CitationCount != 7 || r.PublicationYear == nil || *r.PublicationYear != 2021 || r.BibTeX != "@article{x}" {
		t.Errorf("upgraded columns round-trip = %+v", r)
	}
	if err := db.UpdateTopicDimensions(topicID, 4, 3); err != nil {
		t.Errorf("UpdateTopicDimensions() after upgrade error = %v", err)
	}
}
