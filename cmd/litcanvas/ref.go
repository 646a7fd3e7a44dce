package main

import (
	"context"
	"fmt"

	"github.com/litcanvas/litcanvas/internal/pdfmeta"
	"github.com/litcanvas/litcanvas/internal/reference"
	"github.com/spf13/cobra"
)

var (
	refAddDOI      string
	refAddAuthors  string
	refAddAbstract string
	refAddNotes    string
	refAddYear     int64
	refAddBibTeX   string
)

func init() {
	rootCmd.AddCommand(refCmd)
	refCmd.AddCommand(refListCmd)
	refCmd.AddCommand(refAddCmd)
	refCmd.AddCommand(refGetCmd)
	refCmd.AddCommand(refRmCmd)
	refCmd.AddCommand(refMoveCmd)
	refCmd.AddCommand(refDuplicateCmd)
	refCmd.AddCommand(refImportPDFCmd)

	refAddCmd.Flags().StringVar(&refAddDOI, "doi", "", "DOI")
	refAddCmd.Flags().StringVar(&refAddAuthors, "authors", "", "Comma-separated author names")
	refAddCmd.Flags().StringVar(&refAddAbstract, "abstract", "", "Abstract text")
	refAddCmd.Flags().StringVar(&refAddNotes, "notes", "", "Free-form notes")
	refAddCmd.Flags().Int64Var(&refAddYear, "year", 0, "Publication year")
	refAddCmd.Flags().StringVar(&refAddBibTeX, "bibtex", "", "BibTeX entry")
}

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Manage paper references",
}

var refListCmd = &cobra.Command{
	Use:   "list <topic-id>",
	Short: "List references in a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefList,
}

var refAddCmd = &cobra.Command{
	Use:   "add <topic-id> <title>",
	Short: "Add a reference to a topic",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefAdd,
}

var refGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a reference by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefGet,
}

var refRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefRm,
}

var refMoveCmd = &cobra.Command{
	Use:   "move <id> <topic-id>",
	Short: "Move a reference to another topic",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefMove,
}

var refDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id> <topic-id>",
	Short: "Copy a reference into a topic",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefDuplicate,
}

var refImportPDFCmd = &cobra.Command{
	Use:   "import-pdf <topic-id> <file.pdf>",
	Short: "Import a PDF by extracting its DOI and fetching metadata",
	Long: `Import a PDF into a topic. The DOI is extracted from the PDF text and
looked up on OpenAlex; the resulting title, authors, abstract, year and
citation count populate the new reference.`,
	Args: cobra.ExactArgs(2),
	RunE: runRefImportPDF,
}

func runRefList(cmd *cobra.Command, args []string) error {
	topicID := parseID(args[0], "topic")

	db := openDB()
	defer db.Close()

	refs, err := db.ListReferencesByTopic(topicID)
	if err != nil {
		exitWithError(ExitError, "listing references: %v", err)
	}

	if humanOutput {
		for _, r := range refs {
			outputHuman("%d\t%s\n", r.ID, truncateString(r.Title, ListTitleMaxLen))
		}
		return nil
	}
	return outputJSON(refs)
}

func runRefAdd(cmd *cobra.Command, args []string) error {
	r := reference.Reference{
		TopicID:  parseID(args[0], "topic"),
		Title:    args[1],
		DOI:      refAddDOI,
		Authors:  refAddAuthors,
		Abstract: refAddAbstract,
		Notes:    refAddNotes,
		BibTeX:   refAddBibTeX,
	}
	if refAddYear != 0 {
		r.PublicationYear = &refAddYear
	}
	if err := r.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db := openDB()
	defer db.Close()

	id, err := db.CreateReference(&r)
	if err != nil {
		exitWithError(ExitError, "creating reference: %v", err)
	}

	if humanOutput {
		outputHuman("created reference %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", ID: id})
}

func runRefGet(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "reference")

	db := openDB()
	defer db.Close()

	r, err := db.GetReferenceByID(id)
	if err != nil {
		exitWithError(ExitError, "getting reference: %v", err)
	}
	if r == nil {
		exitWithError(ExitDataError, "reference not found: %d", id)
	}

	if humanOutput {
		printRefDetail(r)
		return nil
	}
	return outputJSON(r)
}

func runRefRm(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "reference")

	db := openDB()
	defer db.Close()

	if err := db.DeleteReference(id); err != nil {
		exitWithError(ExitError, "deleting reference: %v", err)
	}

	if humanOutput {
		outputHuman("deleted reference %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "deleted", ID: id})
}

func runRefMove(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "reference")
	topicID := parseID(args[1], "topic")

	db := openDB()
	defer db.Close()

	if err := db.MoveReference(id, topicID); err != nil {
		exitWithError(ExitError, "moving reference: %v", err)
	}

	if humanOutput {
		outputHuman("moved reference %d to topic %d\n", id, topicID)
		return nil
	}
	return outputJSON(StatusResponse{Status: "moved", ID: id})
}

func runRefDuplicate(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "reference")
	topicID := parseID(args[1], "topic")

	db := openDB()
	defer db.Close()

	dup, err := db.DuplicateReference(id, topicID)
	if err != nil {
		exitWithError(ExitError, "duplicating reference: %v", err)
	}
	if dup == nil {
		exitWithError(ExitDataError, "reference not found: %d", id)
	}

	if humanOutput {
		outputHuman("created reference %d in topic %d\n", dup.ID, topicID)
		return nil
	}
	return outputJSON(dup)
}

func runRefImportPDF(cmd *cobra.Command, args []string) error {
	topicID := parseID(args[0], "topic")
	pdfPath := args[1]

	doi, err := pdfmeta.ExtractDOI(pdfPath)
	if err != nil {
		exitWithError(ExitError, "reading pdf: %v", err)
	}
	if doi == "" {
		exitWithError(ExitDataError, "no DOI found in %s", pdfPath)
	}

	r := reference.Reference{TopicID: topicID, Title: pdfPath, DOI: doi}
	if paper := newSearchService().GetPaperByDOI(context.Background(), doi); paper != nil {
		r.Title = paper.Title
		r.Authors = paper.Authors
		r.Abstract = paper.Abstract
		r.CitationCount = int64(paper.CitationCount)
		if paper.Year != 0 {
			year := int64(paper.Year)
			r.PublicationYear = &year
		}
	}

	db := openDB()
	defer db.Close()

	id, err := db.CreateReference(&r)
	if err != nil {
		exitWithError(ExitError, "creating reference: %v", err)
	}

	if humanOutput {
		outputHuman("imported %s as reference %d (doi %s)\n", truncateString(r.Title, ListTitleMaxLen), id, doi)
		return nil
	}
	return outputJSON(StatusResponse{Status: "imported", ID: id})
}

func printRefDetail(r *reference.Reference) {
	fmt.Printf("Title:     %s\n", wrapText(r.Title, TextWrapWidth, "           "))
	if r.Authors != "" {
		fmt.Printf("Authors:   %s\n", wrapText(r.Authors, TextWrapWidth, "           "))
	}
	if r.PublicationYear != nil {
		fmt.Printf("Year:      %d\n", *r.PublicationYear)
	}
	if r.DOI != "" {
		fmt.Printf("DOI:       %s\n", r.DOI)
	}
	if r.CitationCount > 0 {
		fmt.Printf("Citations: %d\n", r.CitationCount)
	}
	if r.Abstract != "" {
		fmt.Println()
		fmt.Println("Abstract:")
		fmt.Printf("  %s\n", wrapText(r.Abstract, TextWrapWidth, "  "))
	}
	if r.Notes != "" {
		fmt.Println()
		fmt.Println("Notes:")
		fmt.Printf("  %s\n", wrapText(r.Notes, TextWrapWidth, "  "))
	}
}
