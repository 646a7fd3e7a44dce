package api

import (
	"net/http"

	"github.com/litcanvas/litcanvas/internal/reference"
)

// referenceBody carries all mutable reference fields. Creation treats every
// field besides title as optional; update overwrites all of them.
type referenceBody struct {
	Title           string `json:"title"`
	DOI             string `json:"doi"`
	Authors         string `json:"authors"`
	Abstract        string `json:"abstract"`
	Notes           string `json:"notes"`
	CitationCount   int64  `json:"citation_count"`
	PublicationYear *int64 `json:"publication_year"`
	BibTeX          string `json:"bibtex"`
}

func (s *Server) listReferences(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}

	refs, err := s.db.ListReferencesByTopic(topicID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if refs == nil {
		refs = []reference.Reference{}
	}
	writeJSON(w, http.StatusOK, refs)
}

func (s *Server) createReference(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	var body referenceBody
	if !decodeBody(w, r, &body) {
		return
	}

	ref := reference.Reference{
		TopicID:         topicID,
		Title:           body.Title,
		DOI:             body.DOI,
		Authors:         body.Authors,
		Abstract:        body.Abstract,
		Notes:           body.Notes,
		CitationCount:   body.CitationCount,
		PublicationYear: body.PublicationYear,
		BibTeX:          body.BibTeX,
	}
	if err := ref.ValidateForCreate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateReference(&ref)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) updateReference(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "referenceID")
	if !ok {
		return
	}
	var body referenceBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, reference.ErrEmptyTitle.Error())
		return
	}

	err := s.db.UpdateReference(&reference.Reference{
		ID:              id,
		Title:           body.Title,
		DOI:             body.DOI,
		Authors:         body.Authors,
		Abstract:        body.Abstract,
		Notes:           body.Notes,
		CitationCount:   body.CitationCount,
		PublicationYear: body.PublicationYear,
		BibTeX:          body.BibTeX,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteReference(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "referenceID")
	if !ok {
		return
	}
	if err := s.db.DeleteReference(id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) moveReference(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "referenceID")
	if !ok {
		return
	}
	var body struct {
		TopicID int64 `json:"topic_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.TopicID == 0 {
		writeError(w, http.StatusBadRequest, reference.ErrEmptyTopicID.Error())
		return
	}

	if err := s.db.MoveReference(id, body.TopicID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) duplicateReference(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "referenceID")
	if !ok {
		return
	}
	var body struct {
		TopicID int64 `json:"topic_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.TopicID == 0 {
		writeError(w, http.StatusBadRequest, reference.ErrEmptyTopicID.Error())
		return
	}

	dup, err := s.db.DuplicateReference(id, body.TopicID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if dup == nil {
		writeError(w, http.StatusNotFound, "Reference not found")
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}
