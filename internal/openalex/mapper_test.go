package openalex

import "testing"

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url form", "https://doi.org/10.1093/sysbio/syy032", "10.1093/sysbio/syy032"},
		{"bare", "10.1093/sysbio/syy032", "10.1093/sysbio/syy032"},
		{"whitespace", "  https://doi.org/10.1000/x ", "10.1000/x"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDOI(tt.in); got != tt.want {
				t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapWorkToPaper(t *testing.T) {
	w := Work{
		ID:              "https://openalex.org/W2741809807",
		DOI:             "https://doi.org/10.7717/peerj.4375",
		Title:           "The state of OA",
		PublicationYear: 2018,
		CitedByCount:    394,
		Authorships: []Authorship{
			{Author: DehydratedAuthor{DisplayName: "Heather Piwowar"}},
			{Author: DehydratedAuthor{DisplayName: "Jason Priem"}},
			{Author: DehydratedAuthor{DisplayName: ""}}, // skipped
		},
		PrimaryLocation: &Location{Source: &Source{DisplayName: "PeerJ"}},
		AbstractIndex: map[string][]int{
			"Despite": {0},
			"growing": {1},
			"interest": {2},
		},
	}

	p := MapWorkToPaper(w)
	if p.Title != "The state of OA" {
		t.Errorf("p.Title = %q", p.Title)
	}
	if p.DOI != "10.7717/peerj.4375" {
		t.Errorf("p.DOI = %q, want prefix stripped", p.DOI)
	}
	if p.Authors != "Heather Piwowar, Jason Priem" {
		t.Errorf("p.Authors = %q", p.Authors)
	}
	if p.Abstract != "Despite growing interest" {
		t.Errorf("p.Abstract = %q", p.Abstract)
	}
	if p.Year != 2018 || p.CitationCount != 394 || p.Venue != "PeerJ" {
		t.Errorf("mapped fields = %+v", p)
	}
	// URL prefers the DOI URL over the OpenAlex id.
	if p.URL != "https://doi.org/10.7717/peerj.4375" {
		t.Errorf("p.URL = %q", p.URL)
	}
}

func TestMapWorkToPaperDefaults(t *testing.T) {
	p := MapWorkToPaper(Work{ID: "https://openalex.org/W1"})
	if p.Title != "Untitled" {
		t.Errorf("p.Title = %q, want %q", p.Title, "Untitled")
	}
	if p.Authors != "" || p.Abstract != "" || p.Venue != "" || p.DOI != "" {
		t.Errorf("defaults = %+v, want empty strings", p)
	}
	// Without a DOI the URL falls back to the OpenAlex id.
	if p.URL != "https://openalex.org/W1" {
		t.Errorf("p.URL = %q", p.URL)
	}
}

func TestReconstructAbstract(t *testing.T) {
	index := map[string][]int{
		"the":      {0, 3},
		"cat":      {1},
		"sat":      {2},
		"mat":      {4},
	}
	got := ReconstructAbstract(index)
	want := "the cat sat the mat"
	if got != want {
		t.Errorf("ReconstructAbstract() = %q, want %q", got, want)
	}

	if got := ReconstructAbstract(nil); got != "" {
		t.Errorf("ReconstructAbstract(nil) = %q, want empty", got)
	}
}
