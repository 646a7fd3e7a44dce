package main

import (
	"context"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/openalex"
	"github.com/spf13/cobra"
)

var (
	searchTypeFlag string
	searchLimit    int
)

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)

	searchCmd.Flags().StringVar(&searchTypeFlag, "type", string(openalex.SearchByTitle), "Search field: title, author, or doi")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum number of results")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search OpenAlex for papers",
	Long: `Search OpenAlex for papers by title, author, or DOI.

Example:
  litcanvas search "phylogenetic inference" --limit 10
  litcanvas search "Joseph Felsenstein" --type author`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <doi>",
	Short: "Look up a single paper by DOI",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func runSearch(cmd *cobra.Command, args []string) error {
	searchType := openalex.SearchType(searchTypeFlag)
	switch searchType {
	case openalex.SearchByTitle, openalex.SearchByAuthor, openalex.SearchByDOI:
	default:
		exitWithError(ExitError, "invalid search type: %s", searchTypeFlag)
	}
	if searchLimit <= 0 {
		exitWithError(ExitError, "limit must be positive")
	}

	papers := newSearchService().Search(context.Background(), args[0], searchType, searchLimit)

	if humanOutput {
		for i, p := range papers {
			outputHuman("%d. %s\n", i+1, truncateString(p.Title, ListTitleMaxLen))
			if p.Authors != "" {
				outputHuman("   %s", p.Authors)
				if p.Year != 0 {
					outputHuman(" (%d)", p.Year)
				}
				outputHuman("\n")
			}
			if p.DOI != "" {
				outputHuman("   doi: %s\n", p.DOI)
			}
			fmt.Println()
		}
		return nil
	}
	return outputJSON(papers)
}

func runLookup(cmd *cobra.Command, args []string) error {
	paper := newSearchService().GetPaperByDOI(context.Background(), args[0])
	if paper == nil {
		exitWithError(ExitDataError, "paper not found: %s", args[0])
	}

	if humanOutput {
		outputHuman("Title:     %s\n", wrapText(paper.Title, TextWrapWidth, "           "))
		if paper.Authors != "" {
			outputHuman("Authors:   %s\n", wrapText(paper.Authors, TextWrapWidth, "           "))
		}
		if paper.Year != 0 {
			outputHuman("Year:      %d\n", paper.Year)
		}
		if paper.Venue != "" {
			outputHuman("Venue:     %s\n", paper.Venue)
		}
		outputHuman("Citations: %d\n", paper.CitationCount)
		if paper.Abstract != "" {
			fmt.Println()
			outputHuman("Abstract:\n  %s\n", wrapText(paper.Abstract, TextWrapWidth, "  "))
		}
		return nil
	}
	return outputJSON(paper)
}
