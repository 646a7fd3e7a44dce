package api

import (
	"net/http"

	"github.com/litcanvas/litcanvas/internal/connection"
)

func (s *Server) listConnections(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	conns, err := s.db.ListConnectionsByProject(projectID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if conns == nil {
		conns = []connection.ProjectConnection{}
	}
	writeJSON(w, http.StatusOK, conns)
}

func (s *Server) createConnection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SourceReferenceID int64  `json:"source_reference_id"`
		TargetReferenceID int64  `json:"target_reference_id"`
		Description       string `json:"description"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	c := connection.Connection{
		SourceReferenceID: body.SourceReferenceID,
		TargetReferenceID: body.TargetReferenceID,
		Description:       body.Description,
	}
	if err := c.ValidateForCreate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateConnection(&c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) getConnection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "connectionID")
	if !ok {
		return
	}

	c, err := s.db.GetConnectionByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Connection not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) updateConnection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "connectionID")
	if !ok {
		return
	}
	var body struct {
		Description string `json:"description"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := s.db.UpdateConnectionDescription(id, body.Description); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteConnection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "connectionID")
	if !ok {
		return
	}
	if err := s.db.DeleteConnection(id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
