package storage

import (
	"database/sql"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/reference"
)

// selectRefFields is the standard field list for reference SELECT queries.
const selectRefFields = `id, topic_id, title, doi, authors, abstract, notes,
	citation_count, publication_year, bibtex, created_at`

// ListReferencesByTopic returns all references for a topic in insertion order.
func (d *DB) ListReferencesByTopic(topicID int64) ([]reference.Reference, error) {
	rows, err := d.db.Query(`
		SELECT `+selectRefFields+`
		FROM paper_references
		WHERE topic_id = ?
		ORDER BY id
	`, topicID)
	if err != nil {
		return nil, fmt.Errorf("querying references: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// CreateReference inserts a new reference and returns its id.
func (d *DB) CreateReference(r *reference.Reference) (int64, error) {
	res, err := d.db.Exec(`
		INSERT INTO paper_references
			(topic_id, title, doi, authors, abstract, notes, citation_count, publication_year, bibtex)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.TopicID, r.Title, r.DOI, r.Authors, r.Abstract, r.Notes,
		r.CitationCount, nullableInt(r.PublicationYear), r.BibTeX)
	if err != nil {
		return 0, fkErr(fmt.Errorf("inserting reference: %w", err))
	}
	return res.LastInsertId()
}

// GetReferenceByID retrieves a reference by its id. Returns nil, nil when
// no reference has that id.
func (d *DB) GetReferenceByID(id int64) (*reference.Reference, error) {
	row := d.db.QueryRow(`SELECT `+selectRefFields+` FROM paper_references WHERE id = ?`, id)
	r, err := scanReference(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateReference overwrites all mutable fields of a reference. There are no
// partial-patch semantics: callers supply current values for fields they do
// not intend to change. Silently succeeds when the id does not exist.
func (d *DB) UpdateReference(r *reference.Reference) error {
	_, err := d.db.Exec(`
		UPDATE paper_references
		SET title = ?, doi = ?, authors = ?, abstract = ?, notes = ?,
		    citation_count = ?, publication_year = ?, bibtex = ?
		WHERE id = ?
	`, r.Title, r.DOI, r.Authors, r.Abstract, r.Notes,
		r.CitationCount, nullableInt(r.PublicationYear), r.BibTeX, r.ID)
	if err != nil {
		return fmt.Errorf("updating reference: %w", err)
	}
	return nil
}

// DeleteReference removes a reference and, by cascade, any connections
// touching it. Silently succeeds when the id does not exist.
func (d *DB) DeleteReference(id int64) error {
	_, err := d.db.Exec(`DELETE FROM paper_references WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting reference: %w", err)
	}
	return nil
}

// MoveReference reassigns a reference to another topic. Only topic_id
// changes; connections referencing it are unaffected.
func (d *DB) MoveReference(id, targetTopicID int64) error {
	_, err := d.db.Exec(`UPDATE paper_references SET topic_id = ? WHERE id = ?`, targetTopicID, id)
	if err != nil {
		return fkErr(fmt.Errorf("moving reference: %w", err))
	}
	return nil
}

// DuplicateReference inserts a copy of a reference under the target topic
// and returns the new row. Content fields are copied as of call time;
// created_at is freshly generated. Returns nil, nil when the source id does
// not exist, in which case no row is created. Read and insert run in one
// transaction.
func (d *DB) DuplicateReference(id, targetTopicID int64) (*reference.Reference, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT `+selectRefFields+` FROM paper_references WHERE id = ?`, id)
	src, err := scanReference(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	res, err := tx.Exec(`
		INSERT INTO paper_references
			(topic_id, title, doi, authors, abstract, notes, citation_count, publication_year, bibtex)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, targetTopicID, src.Title, src.DOI, src.Authors, src.Abstract, src.Notes,
		src.CitationCount, nullableInt(src.PublicationYear), src.BibTeX)
	if err != nil {
		return nil, fkErr(fmt.Errorf("inserting duplicate: %w", err))
	}

	newID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var createdAt sql.NullString
	if err := tx.QueryRow(`SELECT created_at FROM paper_references WHERE id = ?`, newID).Scan(&createdAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing duplicate: %w", err)
	}

	dup := *src
	dup.ID = newID
	dup.TopicID = targetTopicID
	dup.CreatedAt = createdAt.String
	return &dup, nil
}

func scanReference(s scanner) (*reference.Reference, error) {
	var r reference.Reference
	var doi, authors, abstract, notes, bibtex, createdAt sql.NullString
	var citations, year sql.NullInt64

	err := s.Scan(
		&r.ID, &r.TopicID, &r.Title, &doi, &authors, &abstract, &notes,
		&citations, &year, &bibtex, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	r.DOI = doi.String
	r.Authors = authors.String
	r.Abstract = abstract.String
	r.Notes = notes.String
	r.CitationCount = citations.Int64
	r.BibTeX = bibtex.String
	r.CreatedAt = createdAt.String
	if year.Valid {
		r.PublicationYear = &year.Int64
	}
	return &r, nil
}

func scanReferences(rows *sql.Rows) ([]reference.Reference, error) {
	var refs []reference.Reference
	for rows.Next() {
		r, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, *r)
	}
	return refs, rows.Err()
}

// nullableInt converts an optional integer to its SQL representation,
// treating nil as NULL.
func nullableInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
