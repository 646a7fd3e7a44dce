package api

import (
	"net/http"
	"strconv"

	"github.com/litcanvas/litcanvas/internal/openalex"
)

// searchPapers proxies the external paper index. Adapter failures yield an
// empty result list, never an error status.
func (s *Server) searchPapers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	searchType := openalex.SearchType(r.URL.Query().Get("type"))
	switch searchType {
	case openalex.SearchByTitle, openalex.SearchByAuthor, openalex.SearchByDOI:
	case "":
		searchType = openalex.SearchByTitle
	default:
		writeError(w, http.StatusBadRequest, "type must be one of title, author, doi")
		return
	}

	limit := openalex.DefaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	papers := s.search.Search(r.Context(), query, searchType, limit)
	writeJSON(w, http.StatusOK, papers)
}

// getPaperByDOI proxies a single-paper lookup. Absence (including adapter
// failure) is a 404.
func (s *Server) getPaperByDOI(w http.ResponseWriter, r *http.Request) {
	doi := r.URL.Query().Get("doi")
	if doi == "" {
		writeError(w, http.StatusBadRequest, "query parameter doi is required")
		return
	}

	paper := s.search.GetPaperByDOI(r.Context(), doi)
	if paper == nil {
		writeError(w, http.StatusNotFound, "Paper not found")
		return
	}
	writeJSON(w, http.StatusOK, paper)
}
