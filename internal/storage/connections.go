package storage

import (
	"database/sql"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/connection"
)

// ListConnectionsByProject returns all connections whose source reference
// belongs to a topic in the given project, each enriched with the source and
// target reference's owning topic id.
//
// Only the source side's project is filtered on. A connection whose source
// lies outside the project is excluded even when its target is inside.
// Callers relying on project-scoped listings must account for this.
func (d *DB) ListConnectionsByProject(projectID int64) ([]connection.ProjectConnection, error) {
	rows, err := d.db.Query(`
		SELECT rc.id, rc.source_reference_id, rc.target_reference_id,
		       rc.description, rc.created_at,
		       pr1.topic_id AS source_topic_id,
		       pr2.topic_id AS target_topic_id
		FROM reference_connections rc
		JOIN paper_references pr1 ON rc.source_reference_id = pr1.id
		JOIN paper_references pr2 ON rc.target_reference_id = pr2.id
		JOIN topics t1 ON pr1.topic_id = t1.id
		WHERE t1.project_id = ?
		ORDER BY rc.id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying connections: %w", err)
	}
	defer rows.Close()

	var conns []connection.ProjectConnection
	for rows.Next() {
		var c connection.ProjectConnection
		var desc, createdAt sql.NullString
		err := rows.Scan(
			&c.ID, &c.SourceReferenceID, &c.TargetReferenceID,
			&desc, &createdAt, &c.SourceTopicID, &c.TargetTopicID,
		)
		if err != nil {
			return nil, err
		}
		c.Description = desc.String
		c.CreatedAt = createdAt.String
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

// CreateConnection inserts a new connection and returns its id. Endpoint
// existence is enforced by the store's foreign keys; self-loops and
// duplicate edges are not prevented.
func (d *DB) CreateConnection(c *connection.Connection) (int64, error) {
	res, err := d.db.Exec(`
		INSERT INTO reference_connections (source_reference_id, target_reference_id, description)
		VALUES (?, ?, ?)
	`, c.SourceReferenceID, c.TargetReferenceID, c.Description)
	if err != nil {
		return 0, fkErr(fmt.Errorf("inserting connection: %w", err))
	}
	return res.LastInsertId()
}

// UpdateConnectionDescription overwrites a connection's description only.
// Silently succeeds when the id does not exist.
func (d *DB) UpdateConnectionDescription(id int64, description string) error {
	_, err := d.db.Exec(`UPDATE reference_connections SET description = ? WHERE id = ?`, description, id)
	if err != nil {
		return fmt.Errorf("updating connection description: %w", err)
	}
	return nil
}

// DeleteConnection removes a connection. Silently succeeds when the id does
// not exist.
func (d *DB) DeleteConnection(id int64) error {
	_, err := d.db.Exec(`DELETE FROM reference_connections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}
	return nil
}

// GetConnectionByID retrieves a connection by its id. Returns nil, nil when
// no connection has that id.
func (d *DB) GetConnectionByID(id int64) (*connection.Connection, error) {
	var c connection.Connection
	var desc, createdAt sql.NullString
	err := d.db.QueryRow(`
		SELECT id, source_reference_id, target_reference_id, description, created_at
		FROM reference_connections
		WHERE id = ?
	`, id).Scan(&c.ID, &c.SourceReferenceID, &c.TargetReferenceID, &desc, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Description = desc.String
	c.CreatedAt = createdAt.String
	return &c, nil
}
