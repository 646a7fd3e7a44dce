package storage

import "testing"

func TestCreateAndListProjects(t *testing.T) {
	db := testDB(t)

	first := mustProject(t, db, "Antibody Evolution")
	second := mustProject(t, db, "Viral Phylodynamics")

	projects, err := db.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("ListProjects() len = %d, want 2", len(projects))
	}

	// Newest-created first.
	if projects[0].ID != second || projects[1].ID != first {
		t.Errorf("ListProjects() order = [%d, %d], want [%d, %d]",
			projects[0].ID, projects[1].ID, second, first)
	}
	if projects[0].Title != "Viral Phylodynamics" {
		t.Errorf("projects[0].Title = %q, want %q", projects[0].Title, "Viral Phylodynamics")
	}
	if projects[0].CreatedAt == "" {
		t.Error("projects[0].CreatedAt is empty")
	}
}

func TestGetProjectByID(t *testing.T) {
	db := testDB(t)

	id := mustProject(t, db, "Deep Mutational Scanning")

	p, err := db.GetProjectByID(id)
	if err != nil {
		t.Fatalf("GetProjectByID() error = %v", err)
	}
	if p == nil {
		t.Fatal("GetProjectByID() returned nil for existing project")
	}
	if p.Title != "Deep Mutational Scanning" {
		t.Errorf("p.Title = %q, want %q", p.Title, "Deep Mutational Scanning")
	}

	p, err = db.GetProjectByID(id + 1000)
	if err != nil {
		t.Fatalf("GetProjectByID() miss error = %v", err)
	}
	if p != nil {
		t.Errorf("GetProjectByID() miss = %+v, want nil", p)
	}
}

func TestUpdateProjectTitle(t *testing.T) {
	db := testDB(t)

	id := mustProject(t, db, "Old Title")
	if err := db.UpdateProjectTitle(id, "New Title"); err != nil {
		t.Fatalf("UpdateProjectTitle() error = %v", err)
	}

	p, err := db.GetProjectByID(id)
	if err != nil {
		t.Fatalf("GetProjectByID() error = %v", err)
	}
	if p.Title != "New Title" {
		t.Errorf("p.Title = %q, want %q", p.Title, "New Title")
	}

	// Missing id: silent no-op.
	if err := db.UpdateProjectTitle(id+1000, "Whatever"); err != nil {
		t.Errorf("UpdateProjectTitle() on missing id error = %v, want nil", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := testDB(t)

	projectID := mustProject(t, db, "Doomed")
	topicID := mustTopic(t, db, projectID, "Doomed Topic")
	refA := mustReference(t, db, topicID, "Paper A")
	refB := mustReference(t, db, topicID, "Paper B")
	connID := mustConnection(t, db, refA, refB)

	// An unrelated project must survive.
	otherProject := mustProject(t, db, "Survivor")
	otherTopic := mustTopic(t, db, otherProject, "Survivor Topic")
	otherRef := mustReference(t, db, otherTopic, "Survivor Paper")

	if err := db.DeleteProject(projectID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}

	// The cascade closes transitively over topics, references, connections.
	topics, err := db.ListTopicsByProject(projectID)
	if err != nil {
		t.Fatalf("ListTopicsByProject() error = %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("topics after delete = %d, want 0", len(topics))
	}
	if r, _ := db.GetReferenceByID(refA); r != nil {
		t.Errorf("reference %d survived project delete", refA)
	}
	if r, _ := db.GetReferenceByID(refB); r != nil {
		t.Errorf("reference %d survived project delete", refB)
	}
	if c, _ := db.GetConnectionByID(connID); c != nil {
		t.Errorf("connection %d survived project delete", connID)
	}

	// Unrelated rows untouched.
	if r, _ := db.GetReferenceByID(otherRef); r == nil {
		t.Error("unrelated reference was deleted by cascade")
	}

	// Deleting a missing project: silent no-op.
	if err := db.DeleteProject(projectID); err != nil {
		t.Errorf("DeleteProject() on missing id error = %v, want nil", err)
	}
}
