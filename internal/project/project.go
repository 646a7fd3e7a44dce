// Package project defines the core domain type for research projects.
package project

import "errors"

// Project is the top-level container for a research effort. Deleting a
// project cascades to its topics, their references, and any connections
// touching those references.
type Project struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"` // set by the store on insert
}

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title is required")
)

// ValidateForCreate validates a project for creation.
func (p *Project) ValidateForCreate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
