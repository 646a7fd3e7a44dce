// Package main provides the litcanvas CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	// A local .env may hold OPENALEX_MAILTO and friends; absence is fine.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "litcanvas",
	Short: "Visual literature review workspace",
	Long: `litcanvas manages literature review projects: topics arranged on a
canvas, the paper references filed under them, and the annotated
connections between papers.

Data lives in a local SQLite database. All commands output JSON by
default for easy integration with other tools; pass --human for a
readable rendering. The serve command exposes the same operations over
HTTP for the canvas frontend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
