// Package topic defines the core domain type for canvas topics.
package topic

import (
	"errors"

	"github.com/litcanvas/litcanvas/internal/reference"
)

// DefaultColor is the display color assigned to new topics.
const DefaultColor = "#007bff"

// Topic is a named, positioned, colored grouping of references within a
// project. Position is in canvas coordinates; GridWidth/GridHeight are
// optional layout-sizing fields and stay nil until explicitly set.
type Topic struct {
	ID         int64   `json:"id"`
	ProjectID  int64   `json:"project_id"`
	Name       string  `json:"name"`
	PositionX  float64 `json:"position_x"`
	PositionY  float64 `json:"position_y"`
	Color      string  `json:"color"`
	GridWidth  *int64  `json:"grid_width,omitempty"`
	GridHeight *int64  `json:"grid_height,omitempty"`

	// References is populated by project-scoped listings so each topic
	// carries its nested references. Never nil in listing output, so an
	// empty topic serializes as "references": [].
	References []reference.Reference `json:"references"`
}

// Validation errors.
var (
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyProjectID = errors.New("project_id is required")
)

// ValidateForCreate validates a topic for creation.
func (t *Topic) ValidateForCreate() error {
	if t.ProjectID == 0 {
		return ErrEmptyProjectID
	}
	if t.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// ApplyDefaults fills in the default color when none was supplied.
func (t *Topic) ApplyDefaults() {
	if t.Color == "" {
		t.Color = DefaultColor
	}
}
