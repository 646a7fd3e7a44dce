package main

import (
	"github.com/litcanvas/litcanvas/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectRenameCmd)
	projectCmd.AddCommand(projectRmCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage literature review projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects, newest first",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a project by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectGet,
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectRename,
}

var projectRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a project and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRm,
}

func runProjectList(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	projects, err := db.ListProjects()
	if err != nil {
		exitWithError(ExitError, "listing projects: %v", err)
	}

	if humanOutput {
		for _, p := range projects {
			outputHuman("%d\t%s\t%s\n", p.ID, p.CreatedAt, truncateString(p.Title, ListTitleMaxLen))
		}
		return nil
	}
	return outputJSON(projects)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	p := project.Project{Title: args[0]}
	if err := p.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db := openDB()
	defer db.Close()

	id, err := db.CreateProject(p.Title)
	if err != nil {
		exitWithError(ExitError, "creating project: %v", err)
	}

	if humanOutput {
		outputHuman("created project %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", ID: id})
}

func runProjectGet(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "project")

	db := openDB()
	defer db.Close()

	p, err := db.GetProjectByID(id)
	if err != nil {
		exitWithError(ExitError, "getting project: %v", err)
	}
	if p == nil {
		exitWithError(ExitDataError, "project not found: %d", id)
	}

	if humanOutput {
		outputHuman("%s\ncreated: %s\n", p.Title, p.CreatedAt)
		return nil
	}
	return outputJSON(p)
}

func runProjectRename(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "project")
	p := project.Project{Title: args[1]}
	if err := p.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db := openDB()
	defer db.Close()

	if err := db.UpdateProjectTitle(id, p.Title); err != nil {
		exitWithError(ExitError, "renaming project: %v", err)
	}

	if humanOutput {
		outputHuman("renamed project %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "renamed", ID: id})
}

func runProjectRm(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "project")

	db := openDB()
	defer db.Close()

	if err := db.DeleteProject(id); err != nil {
		exitWithError(ExitError, "deleting project: %v", err)
	}

	if humanOutput {
		outputHuman("deleted project %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "deleted", ID: id})
}
