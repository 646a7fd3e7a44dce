// Package pdfmeta extracts bibliographic identifiers from PDF files so a
// local paper can be imported through the search adapter.
package pdfmeta

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiPattern matches DOIs of the form 10.XXXX/... where XXXX is 4+ digits.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxSearchPages bounds the scan; the DOI is almost always on page one.
const maxSearchPages = 3

// ExtractDOI extracts a DOI from a PDF file, searching the first few pages.
// Returns an empty string, not an error, when no DOI is present.
func ExtractDOI(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := maxSearchPages
	if r.NumPage() < pages {
		pages = r.NumPage()
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if doi := FindDOI(text); doi != "" {
			return doi, nil
		}
	}

	return "", nil
}

// FindDOI finds the first DOI in a block of text. Trailing punctuation that
// PDF extraction tends to glue onto the identifier is trimmed.
func FindDOI(text string) string {
	match := doiPattern.FindString(text)
	if match == "" {
		return ""
	}
	return strings.TrimRight(match, ".,;)")
}
