package openalex

import (
	"sort"
	"strings"
)

// doiPrefix is the URL form OpenAlex uses for DOIs.
const doiPrefix = "https://doi.org/"

// NormalizeDOI strips the https://doi.org/ URL prefix from a DOI, if present.
func NormalizeDOI(doi string) string {
	return strings.TrimPrefix(strings.TrimSpace(doi), doiPrefix)
}

// MapWorkToPaper converts an OpenAlex work into the reference-shaped result
// handed to callers. A missing title becomes "Untitled"; the DOI loses its
// URL prefix; authors are comma-joined display names.
func MapWorkToPaper(w Work) Paper {
	title := w.Title
	if title == "" {
		title = "Untitled"
	}

	url := w.DOI
	if url == "" {
		url = w.ID
	}

	return Paper{
		ID:            w.ID,
		Title:         title,
		DOI:           NormalizeDOI(w.DOI),
		Authors:       joinAuthors(w.Authorships),
		Abstract:      ReconstructAbstract(w.AbstractIndex),
		Year:          w.PublicationYear,
		Venue:         venueName(w.PrimaryLocation),
		CitationCount: w.CitedByCount,
		URL:           url,
	}
}

// MapWorksToPapers converts a slice of works, preserving order.
func MapWorksToPapers(works []Work) []Paper {
	papers := make([]Paper, 0, len(works))
	for _, w := range works {
		papers = append(papers, MapWorkToPaper(w))
	}
	return papers
}

// joinAuthors comma-joins author display names, skipping empty ones.
func joinAuthors(authorships []Authorship) string {
	var names []string
	for _, a := range authorships {
		if a.Author.DisplayName != "" {
			names = append(names, a.Author.DisplayName)
		}
	}
	return strings.Join(names, ", ")
}

// venueName extracts the venue display name, tolerating missing locations.
func venueName(loc *Location) string {
	if loc == nil || loc.Source == nil {
		return ""
	}
	return loc.Source.DisplayName
}

// ReconstructAbstract rebuilds abstract text from OpenAlex's inverted index
// (word -> positions). Positions are placed into a single sequence; gaps in
// the position space are tolerated.
func ReconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var placed []posWord
	for word, positions := range index {
		for _, p := range positions {
			placed = append(placed, posWord{pos: p, word: word})
		}
	}
	sort.Slice(placed, func(i, j int) bool { return placed[i].pos < placed[j].pos })

	words := make([]string, 0, len(placed))
	for _, pw := range placed {
		words = append(words, pw.word)
	}
	return strings.Join(words, " ")
}
