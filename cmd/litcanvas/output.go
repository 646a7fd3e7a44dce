package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/litcanvas/litcanvas/internal/config"
	"github.com/litcanvas/litcanvas/internal/openalex"
	"github.com/litcanvas/litcanvas/internal/storage"
)

// Constants for output formatting.
const (
	DefaultSearchLimit = 25 // Default limit for paper search

	ListTitleMaxLen = 60 // Title truncation in list output
	TextWrapWidth   = 68 // Wrap width for abstracts and notes
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that change state.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

// openDB loads configuration and opens the database, exiting on failure.
// The caller must Close the returned database.
func openDB() *storage.DB {
	cfg, err := config.LoadDefault()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		exitWithError(ExitConfigError, "creating data directory: %v", err)
	}
	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// newSearchService builds an OpenAlex service from configuration.
func newSearchService() *openalex.Service {
	cfg, err := config.LoadDefault()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	var opts []openalex.ClientOption
	if cfg.OpenAlexMailto != "" {
		opts = append(opts, openalex.WithMailto(cfg.OpenAlexMailto))
	}
	if cfg.OpenAlexAPIKey != "" {
		opts = append(opts, openalex.WithAPIKey(cfg.OpenAlexAPIKey))
	}
	return openalex.NewService(openalex.NewClient(opts...), nil)
}

// parseID parses a positional numeric ID argument.
func parseID(arg, what string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		exitWithError(ExitError, "invalid %s id: %s", what, arg)
	}
	return id
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
