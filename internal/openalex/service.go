package openalex

import (
	"context"

	"go.uber.org/zap"
)

// Service is the boundary wrapper around the client. Lookup failures are
// logged and swallowed: search yields an empty list and DOI lookup yields
// absence, never an error. Callers that need the underlying error should use
// Client directly.
type Service struct {
	client *Client
	log    *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(client *Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}
}

// Search searches for papers and maps them into the reference shape.
// Returns an empty (non-nil) slice on any failure.
func (s *Service) Search(ctx context.Context, query string, searchType SearchType, limit int) []Paper {
	works, err := s.client.SearchWorks(ctx, query, searchType, limit)
	if err != nil {
		s.log.Warn("paper search failed",
			zap.String("query", query),
			zap.String("type", string(searchType)),
			zap.Error(err))
		return []Paper{}
	}
	return MapWorksToPapers(works)
}

// GetPaperByDOI looks up a single paper by DOI. Returns nil on any failure,
// including not-found.
func (s *Service) GetPaperByDOI(ctx context.Context, doi string) *Paper {
	work, err := s.client.GetWorkByDOI(ctx, doi)
	if err != nil {
		if !IsNotFound(err) {
			s.log.Warn("paper lookup failed", zap.String("doi", doi), zap.Error(err))
		}
		return nil
	}
	paper := MapWorkToPaper(*work)
	return &paper
}
