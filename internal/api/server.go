// Package api exposes the store and the paper search service over HTTP.
// Routes map one-to-one onto repository operations; required-field
// validation lives here, at the boundary, not in storage.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/litcanvas/litcanvas/internal/openalex"
	"github.com/litcanvas/litcanvas/internal/storage"
)

// Server holds the handler dependencies.
type Server struct {
	db     *storage.DB
	search *openalex.Service
	log    *zap.Logger
}

// NewServer creates a Server. A nil logger disables logging.
func NewServer(db *storage.DB, search *openalex.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{db: db, search: search, log: log}
}

// Router configures all routes and middleware.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Post("/", s.createProject)
			r.Get("/{projectID}", s.getProject)
			r.Put("/{projectID}", s.updateProjectTitle)
			r.Delete("/{projectID}", s.deleteProject)
			r.Get("/{projectID}/topics", s.listTopics)
			r.Post("/{projectID}/topics", s.createTopic)
			r.Get("/{projectID}/connections", s.listConnections)
		})

		r.Route("/topics", func(r chi.Router) {
			r.Put("/{topicID}/name", s.updateTopicName)
			r.Put("/{topicID}/position", s.updateTopicPosition)
			r.Put("/{topicID}/dimensions", s.updateTopicDimensions)
			r.Delete("/{topicID}", s.deleteTopic)
			r.Get("/{topicID}/references", s.listReferences)
			r.Post("/{topicID}/references", s.createReference)
		})

		r.Route("/references", func(r chi.Router) {
			r.Put("/{referenceID}", s.updateReference)
			r.Delete("/{referenceID}", s.deleteReference)
			r.Post("/{referenceID}/move", s.moveReference)
			r.Post("/{referenceID}/duplicate", s.duplicateReference)
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/", s.createConnection)
			r.Get("/{connectionID}", s.getConnection)
			r.Put("/{connectionID}", s.updateConnection)
			r.Delete("/{connectionID}", s.deleteConnection)
		})

		r.Get("/search", s.searchPapers)
		r.Get("/search/doi", s.getPaperByDOI)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
