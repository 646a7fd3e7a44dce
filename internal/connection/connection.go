// Package connection defines the core domain type for reference connections.
package connection

import "errors"

// Connection is a directed, annotated edge between two references.
// Self-loops and duplicate edges are not prevented; deleting either
// endpoint reference cascades to delete the connection.
type Connection struct {
	ID                int64  `json:"id"`
	SourceReferenceID int64  `json:"source_reference_id"`
	TargetReferenceID int64  `json:"target_reference_id"`
	Description       string `json:"description"`
	CreatedAt         string `json:"created_at"` // set by the store on insert
}

// ProjectConnection is a connection as returned by project-scoped listings,
// enriched with each endpoint reference's owning topic id.
type ProjectConnection struct {
	Connection
	SourceTopicID int64 `json:"source_topic_id"`
	TargetTopicID int64 `json:"target_topic_id"`
}

// Validation errors.
var (
	ErrEmptySourceID = errors.New("source_reference_id is required")
	ErrEmptyTargetID = errors.New("target_reference_id is required")
)

// ValidateForCreate validates a connection for creation.
func (c *Connection) ValidateForCreate() error {
	if c.SourceReferenceID == 0 {
		return ErrEmptySourceID
	}
	if c.TargetReferenceID == 0 {
		return ErrEmptyTargetID
	}
	return nil
}
