package openalex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const listBody = `{
	"meta": {"count": 2, "page": 1, "per_page": 10},
	"results": [
		{
			"id": "https://openalex.org/W1",
			"doi": "https://doi.org/10.1000/one",
			"title": "First",
			"publication_year": 2020,
			"cited_by_count": 5,
			"authorships": [{"author": {"display_name": "Ada Lovelace"}}]
		},
		{
			"id": "https://openalex.org/W2",
			"title": "Second"
		}
	]
}`

func TestSearchWorks(t *testing.T) {
	var gotQuery, gotFilter, gotPerPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works" {
			t.Errorf("path = %q, want /works", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("search")
		gotFilter = r.URL.Query().Get("filter")
		gotPerPage = r.URL.Query().Get("per-page")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listBody))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	works, err := client.SearchWorks(context.Background(), "phylogenetics", SearchByTitle, 10)
	if err != nil {
		t.Fatalf("SearchWorks() error = %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("SearchWorks() len = %d, want 2", len(works))
	}
	if gotQuery != "phylogenetics" || gotFilter != "" || gotPerPage != "10" {
		t.Errorf("title search params: search=%q filter=%q per-page=%q", gotQuery, gotFilter, gotPerPage)
	}
	if works[0].Title != "First" || works[0].Authorships[0].Author.DisplayName != "Ada Lovelace" {
		t.Errorf("works[0] = %+v", works[0])
	}

	// Author search uses a filter, not full-text search.
	if _, err := client.SearchWorks(context.Background(), "Lovelace", SearchByAuthor, 5); err != nil {
		t.Fatalf("SearchWorks(author) error = %v", err)
	}
	if gotQuery != "" || gotFilter != "raw_author_name.search:Lovelace" {
		t.Errorf("author search params: search=%q filter=%q", gotQuery, gotFilter)
	}

	// DOI search strips the URL prefix before filtering.
	if _, err := client.SearchWorks(context.Background(), "https://doi.org/10.1000/one", SearchByDOI, 5); err != nil {
		t.Fatalf("SearchWorks(doi) error = %v", err)
	}
	if gotFilter != "doi:10.1000/one" {
		t.Errorf("doi search filter = %q, want %q", gotFilter, "doi:10.1000/one")
	}
}

func TestGetWorkByDOI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f := r.URL.Query().Get("filter"); f == "doi:10.1000/one" {
			w.Write([]byte(listBody))
			return
		}
		w.Write([]byte(`{"meta": {"count": 0}, "results": []}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	work, err := client.GetWorkByDOI(context.Background(), "https://doi.org/10.1000/one")
	if err != nil {
		t.Fatalf("GetWorkByDOI() error = %v", err)
	}
	if work.Title != "First" {
		t.Errorf("work.Title = %q, want %q", work.Title, "First")
	}

	_, err = client.GetWorkByDOI(context.Background(), "10.1000/missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetWorkByDOI() miss error = %v, want ErrNotFound", err)
	}
}

func TestClientHTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"not found", 404, func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"rate limited", 429, func(err error) bool { return errors.Is(err, ErrRateLimited) }},
		{"server error", 500, func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode == 500
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(WithBaseURL(srv.URL))
			_, err := client.SearchWorks(context.Background(), "x", SearchByTitle, 1)
			if err == nil || !tt.check(err) {
				t.Errorf("SearchWorks() error = %v, want %s", err, tt.name)
			}
		})
	}
}

func TestServiceSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(NewClient(WithBaseURL(srv.URL)), nil)

	papers := svc.Search(context.Background(), "anything", SearchByTitle, 10)
	if papers == nil {
		t.Error("Search() on failure = nil, want empty slice")
	}
	if len(papers) != 0 {
		t.Errorf("Search() on failure len = %d, want 0", len(papers))
	}

	if p := svc.GetPaperByDOI(context.Background(), "10.1000/x"); p != nil {
		t.Errorf("GetPaperByDOI() on failure = %+v, want nil", p)
	}
}

func TestServiceMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listBody))
	}))
	defer srv.Close()

	svc := NewService(NewClient(WithBaseURL(srv.URL)), nil)

	papers := svc.Search(context.Background(), "q", SearchByTitle, 10)
	if len(papers) != 2 {
		t.Fatalf("Search() len = %d, want 2", len(papers))
	}
	if papers[0].DOI != "10.1000/one" || papers[0].Authors != "Ada Lovelace" {
		t.Errorf("papers[0] = %+v", papers[0])
	}
	// A work with no title maps to "Untitled".
	if papers[1].Title != "Second" {
		t.Errorf("papers[1].Title = %q", papers[1].Title)
	}

	p := svc.GetPaperByDOI(context.Background(), "10.1000/one")
	if p == nil || p.Title != "First" {
		t.Errorf("GetPaperByDOI() = %+v", p)
	}
}
