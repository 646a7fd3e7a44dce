package api

import (
	"net/http"

	"github.com/litcanvas/litcanvas/internal/topic"
)

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	topics, err := s.db.ListTopicsByProject(projectID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if topics == nil {
		topics = []topic.Topic{}
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	var body struct {
		Name      string  `json:"name"`
		PositionX float64 `json:"position_x"`
		PositionY float64 `json:"position_y"`
		Color     string  `json:"color"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	t := topic.Topic{
		ProjectID: projectID,
		Name:      body.Name,
		PositionX: body.PositionX,
		PositionY: body.PositionY,
		Color:     body.Color,
	}
	if err := t.ValidateForCreate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t.ApplyDefaults()

	id, err := s.db.CreateTopic(&t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) updateTopicName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, topic.ErrEmptyName.Error())
		return
	}

	if err := s.db.UpdateTopicName(id, body.Name); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateTopicPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	var body struct {
		PositionX float64 `json:"position_x"`
		PositionY float64 `json:"position_y"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := s.db.UpdateTopicPosition(id, body.PositionX, body.PositionY); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateTopicDimensions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	var body struct {
		GridWidth  int64 `json:"grid_width"`
		GridHeight int64 `json:"grid_height"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := s.db.UpdateTopicDimensions(id, body.GridWidth, body.GridHeight); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	if err := s.db.DeleteTopic(id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
