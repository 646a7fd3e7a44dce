package storage

import (
	"database/sql"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/project"
)

// ListProjects returns all projects, newest-created first.
func (d *DB) ListProjects() ([]project.Project, error) {
	rows, err := d.db.Query(`
		SELECT id, title, created_at
		FROM projects
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// CreateProject inserts a new project and returns its id.
func (d *DB) CreateProject(title string) (int64, error) {
	res, err := d.db.Exec(`INSERT INTO projects (title) VALUES (?)`, title)
	if err != nil {
		return 0, fmt.Errorf("inserting project: %w", err)
	}
	return res.LastInsertId()
}

// GetProjectByID retrieves a project by its id. Returns nil, nil when no
// project has that id.
func (d *DB) GetProjectByID(id int64) (*project.Project, error) {
	row := d.db.QueryRow(`SELECT id, title, created_at FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProjectTitle overwrites a project's title. Silently succeeds when
// the id does not exist.
func (d *DB) UpdateProjectTitle(id int64, title string) error {
	_, err := d.db.Exec(`UPDATE projects SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("updating project title: %w", err)
	}
	return nil
}

// DeleteProject removes a project. Its topics, their references, and any
// connections touching those references are removed by cascade. Silently
// succeeds when the id does not exist.
func (d *DB) DeleteProject(id int64) error {
	_, err := d.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(s scanner) (*project.Project, error) {
	var p project.Project
	var createdAt sql.NullString
	if err := s.Scan(&p.ID, &p.Title, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt.String
	return &p, nil
}
