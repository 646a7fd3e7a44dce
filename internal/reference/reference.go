// Package reference defines the core domain type for bibliographic records.
package reference

import "errors"

// Reference is a bibliographic record belonging to exactly one topic at a
// time. All fields besides TopicID and Title are optional; CitationCount
// defaults to 0 and PublicationYear stays nil when unknown.
type Reference struct {
	ID              int64  `json:"id"`
	TopicID         int64  `json:"topic_id"`
	Title           string `json:"title"`
	DOI             string `json:"doi"`
	Authors         string `json:"authors"` // comma-joined display names
	Abstract        string `json:"abstract"`
	Notes           string `json:"notes"`
	CitationCount   int64  `json:"citation_count"`
	PublicationYear *int64 `json:"publication_year,omitempty"`
	BibTeX          string `json:"bibtex"`
	CreatedAt       string `json:"created_at"` // set by the store on insert
}

// Validation errors.
var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyTopicID = errors.New("topic_id is required")
)

// ValidateForCreate validates a reference for creation.
func (r *Reference) ValidateForCreate() error {
	if r.TopicID == 0 {
		return ErrEmptyTopicID
	}
	if r.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
