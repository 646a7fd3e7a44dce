package storage

import (
	"errors"
	"testing"

	"github.com/litcanvas/litcanvas/internal/topic"
)

func TestCreateTopicDefaults(t *testing.T) {
	db := testDB(t)
	projectID := mustProject(t, db, "Canvas")

	tp := &topic.Topic{ProjectID: projectID, Name: "Background Reading"}
	tp.ApplyDefaults()
	id, err := db.CreateTopic(tp)
	if err != nil {
		t.Fatalf("CreateTopic() error = %v", err)
	}

	got, err := db.GetTopicByID(id)
	if err != nil {
		t.Fatalf("GetTopicByID() error = %v", err)
	}
	if got.Color != topic.DefaultColor {
		t.Errorf("got.Color = %q, want %q", got.Color, topic.DefaultColor)
	}
	if got.PositionX != 0 || got.PositionY != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", got.PositionX, got.PositionY)
	}
	if got.GridWidth != nil || got.GridHeight != nil {
		t.Errorf("grid dimensions = (%v, %v), want unset", got.GridWidth, got.GridHeight)
	}
}

func TestCreateTopicMissingProject(t *testing.T) {
	db := testDB(t)

	tp := &topic.Topic{ProjectID: 999, Name: "Orphan"}
	tp.ApplyDefaults()
	_, err := db.CreateTopic(tp)
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("CreateTopic() with missing project error = %v, want ErrForeignKey", err)
	}
}

func TestListTopicsByProjectNestsReferences(t *testing.T) {
	db := testDB(t)
	projectID := mustProject(t, db, "Canvas")

	methods := mustTopic(t, db, projectID, "Methods")
	results := mustTopic(t, db, projectID, "Results")
	refA := mustReference(t, db, methods, "Paper A")
	refB := mustReference(t, db, methods, "Paper B")

	// A topic in another project must not leak in.
	otherProject := mustProject(t, db, "Other")
	mustTopic(t, db, otherProject, "Elsewhere")

	topics, err := db.ListTopicsByProject(projectID)
	if err != nil {
		t.Fatalf("ListTopicsByProject() error = %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("ListTopicsByProject() len = %d, want 2", len(topics))
	}

	if topics[0].ID != methods || topics[1].ID != results {
		t.Errorf("topic order = [%d, %d], want [%d, %d]", topics[0].ID, topics[1].ID, methods, results)
	}

	// References are nested under their topic, in insertion order.
	refs := topics[0].References
	if len(refs) != 2 || refs[0].ID != refA || refs[1].ID != refB {
		t.Errorf("nested references = %+v, want ids [%d, %d]", refs, refA, refB)
	}

	// An empty topic carries an empty, non-nil slice.
	if topics[1].References == nil || len(topics[1].References) != 0 {
		t.Errorf("empty topic references = %#v, want empty slice", topics[1].References)
	}
}

func TestUpdateTopicPositionRoundTrips(t *testing.T) {
	db := testDB(t)
	projectID := mustProject(t, db, "Canvas")
	id := mustTopic(t, db, projectID, "Movable")

	if err := db.UpdateTopicPosition(id, 12.5, -3.0); err != nil {
		t.Fatalf("UpdateTopicPosition() error = %v", err)
	}

	got, err := db.GetTopicByID(id)
	if err != nil {
		t.Fatalf("GetTopicByID() error = %v", err)
	}
	if got.PositionX != 12.5 || got.PositionY != -3.0 {
		t.Errorf("position = (%v, %v), want (12.5, -3.0)", got.PositionX, got.PositionY)
	}
	// Name and color untouched by a position update.
	if got.Name != "Movable" {
		t.Errorf("got.Name = %q, want %q", got.Name, "Movable")
	}
	if got.Color != topic.DefaultColor {
		t.Errorf("got.Color = %q, want %q", got.Color, topic.DefaultColor)
	}
}

func TestUpdateTopicNameAndDimensions(t *testing.T) {
	db := testDB(t)
	projectID := mustProject(t, db, "Canvas")
	id := mustTopic(t, db, projectID, "Before")

	if err := db.UpdateTopicName(id, "After"); err != nil {
		t.Fatalf("UpdateTopicName() error = %v", err)
	}
	if err := db.UpdateTopicDimensions(id, 6, 4); err != nil {
		t.Fatalf("UpdateTopicDimensions() error = %v", err)
	}

	got, err := db.GetTopicByID(id)
	if err != nil {
		t.Fatalf("GetTopicByID() error = %v", err)
	}
	if got.Name != "After" {
		t.Errorf("got.Name = %q, want %q", got.Name, "After")
	}
	if got.GridWidth == nil || *got.GridWidth != 6 || got.GridHeight == nil || *got.GridHeight != 4 {
		t.Errorf("grid dimensions = (%v, %v), want (6, 4)", got.GridWidth, got.GridHeight)
	}
}

func TestDeleteTopicCascades(t *testing.T) {
	db := testDB(t)
	projectID := mustProject(t, db, "Canvas")
	topicID := mustTopic(t, db, projectID, "Doomed")
	refA := mustReference(t, db, topicID, "Paper A")
	refB := mustReference(t, db, topicID, "Paper B")
	connID := mustConnection(t, db, refA, refB)

	if err := db.DeleteTopic(topicID); err != nil {
		t.Fatalf("DeleteTopic() error = %v", err)
	}

	if r, _ := db.GetReferenceByID(refA); r != nil {
		t.Errorf("reference %d survived topic delete", refA)
	}
	if c, _ := db.GetConnectionByID(connID); c != nil {
		t.Errorf("connection %d survived topic delete", connID)
	}
}
