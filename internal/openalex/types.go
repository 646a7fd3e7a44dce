// Package openalex provides a client for the OpenAlex scholarly works API.
package openalex

// Work represents a work as returned by the OpenAlex API.
type Work struct {
	ID              string           `json:"id"`
	DOI             string           `json:"doi,omitempty"` // full URL form, https://doi.org/10....
	Title           string           `json:"title,omitempty"`
	PublicationYear int              `json:"publication_year,omitempty"`
	CitedByCount    int              `json:"cited_by_count,omitempty"`
	Authorships     []Authorship     `json:"authorships,omitempty"`
	PrimaryLocation *Location        `json:"primary_location,omitempty"`
	AbstractIndex   map[string][]int `json:"abstract_inverted_index,omitempty"`
}

// Authorship links a work to one of its authors.
type Authorship struct {
	Author DehydratedAuthor `json:"author"`
}

// DehydratedAuthor is the minimal author record embedded in a work.
type DehydratedAuthor struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Location is where a work was published or hosted.
type Location struct {
	Source *Source `json:"source,omitempty"`
}

// Source is a venue (journal, conference, repository).
type Source struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// ListResponse is the envelope for OpenAlex list endpoints.
type ListResponse struct {
	Meta    Meta   `json:"meta"`
	Results []Work `json:"results"`
}

// Meta carries result counts for list responses.
type Meta struct {
	Count   int `json:"count"`
	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

// Paper is the reference-shaped search result handed to callers. It mirrors
// the fields a reference row carries so a result can be saved directly.
type Paper struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	DOI           string `json:"doi"`
	Authors       string `json:"authors"`
	Abstract      string `json:"abstract"`
	Year          int    `json:"year,omitempty"`
	Venue         string `json:"venue"`
	CitationCount int    `json:"citation_count"`
	URL           string `json:"url"`
}

// SearchType selects which field a query matches against.
type SearchType string

const (
	SearchByTitle  SearchType = "title"
	SearchByAuthor SearchType = "author"
	SearchByDOI    SearchType = "doi"
)
