package storage

import (
	"database/sql"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/reference"
	"github.com/litcanvas/litcanvas/internal/topic"
)

// ListTopicsByProject returns all topics for a project, each carrying its
// nested references. A single joined query is used rather than one query
// per topic; the nested output shape is unchanged.
func (d *DB) ListTopicsByProject(projectID int64) ([]topic.Topic, error) {
	rows, err := d.db.Query(`
		SELECT t.id, t.project_id, t.name, t.position_x, t.position_y, t.color,
		       t.grid_width, t.grid_height,
		       r.id, r.topic_id, r.title, r.doi, r.authors, r.abstract, r.notes,
		       r.citation_count, r.publication_year, r.bibtex, r.created_at
		FROM topics t
		LEFT JOIN paper_references r ON r.topic_id = t.id
		WHERE t.project_id = ?
		ORDER BY t.id, r.id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	var topics []topic.Topic
	for rows.Next() {
		var t topic.Topic
		var gridW, gridH sql.NullInt64
		var refID sql.NullInt64
		var refTopicID, refCitations sql.NullInt64
		var refYear sql.NullInt64
		var refTitle, refDOI, refAuthors, refAbstract, refNotes, refBibtex, refCreatedAt sql.NullString

		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Name, &t.PositionX, &t.PositionY, &t.Color,
			&gridW, &gridH,
			&refID, &refTopicID, &refTitle, &refDOI, &refAuthors, &refAbstract, &refNotes,
			&refCitations, &refYear, &refBibtex, &refCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if gridW.Valid {
			t.GridWidth = &gridW.Int64
		}
		if gridH.Valid {
			t.GridHeight = &gridH.Int64
		}

		// Group rows by topic; consecutive rows share the topic id.
		if len(topics) == 0 || topics[len(topics)-1].ID != t.ID {
			t.References = []reference.Reference{}
			topics = append(topics, t)
		}

		if refID.Valid {
			r := reference.Reference{
				ID:            refID.Int64,
				TopicID:       refTopicID.Int64,
				Title:         refTitle.String,
				DOI:           refDOI.String,
				Authors:       refAuthors.String,
				Abstract:      refAbstract.String,
				Notes:         refNotes.String,
				CitationCount: refCitations.Int64,
				BibTeX:        refBibtex.String,
				CreatedAt:     refCreatedAt.String,
			}
			if refYear.Valid {
				r.PublicationYear = &refYear.Int64
			}
			last := &topics[len(topics)-1]
			last.References = append(last.References, r)
		}
	}
	return topics, rows.Err()
}

// CreateTopic inserts a new topic and returns its id. The caller fills
// defaults (color) via topic.ApplyDefaults before insert.
func (d *DB) CreateTopic(t *topic.Topic) (int64, error) {
	res, err := d.db.Exec(`
		INSERT INTO topics (project_id, name, position_x, position_y, color)
		VALUES (?, ?, ?, ?, ?)
	`, t.ProjectID, t.Name, t.PositionX, t.PositionY, t.Color)
	if err != nil {
		return 0, fkErr(fmt.Errorf("inserting topic: %w", err))
	}
	return res.LastInsertId()
}

// UpdateTopicName overwrites a topic's name only.
func (d *DB) UpdateTopicName(id int64, name string) error {
	_, err := d.db.Exec(`UPDATE topics SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("updating topic name: %w", err)
	}
	return nil
}

// UpdateTopicPosition overwrites a topic's canvas position only.
func (d *DB) UpdateTopicPosition(id int64, x, y float64) error {
	_, err := d.db.Exec(`UPDATE topics SET position_x = ?, position_y = ? WHERE id = ?`, x, y, id)
	if err != nil {
		return fmt.Errorf("updating topic position: %w", err)
	}
	return nil
}

// UpdateTopicDimensions overwrites a topic's grid dimensions only.
func (d *DB) UpdateTopicDimensions(id int64, width, height int64) error {
	_, err := d.db.Exec(`UPDATE topics SET grid_width = ?, grid_height = ? WHERE id = ?`, width, height, id)
	if err != nil {
		return fmt.Errorf("updating topic dimensions: %w", err)
	}
	return nil
}

// DeleteTopic removes a topic and, by cascade, all its references and their
// connections. Silently succeeds when the id does not exist.
func (d *DB) DeleteTopic(id int64) error {
	_, err := d.db.Exec(`DELETE FROM topics WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting topic: %w", err)
	}
	return nil
}

// GetTopicByID retrieves a topic by its id, without nested references.
// Returns nil, nil when no topic has that id.
func (d *DB) GetTopicByID(id int64) (*topic.Topic, error) {
	var t topic.Topic
	var gridW, gridH sql.NullInt64
	err := d.db.QueryRow(`
		SELECT id, project_id, name, position_x, position_y, color, grid_width, grid_height
		FROM topics
		WHERE id = ?
	`, id).Scan(&t.ID, &t.ProjectID, &t.Name, &t.PositionX, &t.PositionY, &t.Color, &gridW, &gridH)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if gridW.Valid {
		t.GridWidth = &gridW.Int64
	}
	if gridH.Valid {
		t.GridHeight = &gridH.Int64
	}
	return &t, nil
}
