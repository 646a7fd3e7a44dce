package main

import (
	"github.com/litcanvas/litcanvas/internal/connection"
	"github.com/spf13/cobra"
)

var connAddDescription string

func init() {
	rootCmd.AddCommand(connectionCmd)
	connectionCmd.AddCommand(connectionListCmd)
	connectionCmd.AddCommand(connectionAddCmd)
	connectionCmd.AddCommand(connectionGetCmd)
	connectionCmd.AddCommand(connectionAnnotateCmd)
	connectionCmd.AddCommand(connectionRmCmd)

	connectionAddCmd.Flags().StringVar(&connAddDescription, "description", "", "Edge annotation")
}

var connectionCmd = &cobra.Command{
	Use:     "connection",
	Aliases: []string{"conn"},
	Short:   "Manage connections between references",
}

var connectionListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's connections",
	Long: `List connections whose source reference belongs to the given project,
together with each endpoint's owning topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runConnectionList,
}

var connectionAddCmd = &cobra.Command{
	Use:   "add <source-ref-id> <target-ref-id>",
	Short: "Connect two references",
	Args:  cobra.ExactArgs(2),
	RunE:  runConnectionAdd,
}

var connectionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a connection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnectionGet,
}

var connectionAnnotateCmd = &cobra.Command{
	Use:   "annotate <id> <description>",
	Short: "Set a connection's description",
	Args:  cobra.ExactArgs(2),
	RunE:  runConnectionAnnotate,
}

var connectionRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnectionRm,
}

func runConnectionList(cmd *cobra.Command, args []string) error {
	projectID := parseID(args[0], "project")

	db := openDB()
	defer db.Close()

	conns, err := db.ListConnectionsByProject(projectID)
	if err != nil {
		exitWithError(ExitError, "listing connections: %v", err)
	}

	if humanOutput {
		for _, c := range conns {
			outputHuman("%d\t%d -> %d\t%s\n", c.ID, c.SourceReferenceID, c.TargetReferenceID, c.Description)
		}
		return nil
	}
	return outputJSON(conns)
}

func runConnectionAdd(cmd *cobra.Command, args []string) error {
	c := connection.Connection{
		SourceReferenceID: parseID(args[0], "reference"),
		TargetReferenceID: parseID(args[1], "reference"),
		Description:       connAddDescription,
	}
	if err := c.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db := openDB()
	defer db.Close()

	id, err := db.CreateConnection(&c)
	if err != nil {
		exitWithError(ExitError, "creating connection: %v", err)
	}

	if humanOutput {
		outputHuman("created connection %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", ID: id})
}

func runConnectionGet(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "connection")

	db := openDB()
	defer db.Close()

	c, err := db.GetConnectionByID(id)
	if err != nil {
		exitWithError(ExitError, "getting connection: %v", err)
	}
	if c == nil {
		exitWithError(ExitDataError, "connection not found: %d", id)
	}

	if humanOutput {
		outputHuman("%d -> %d\t%s\n", c.SourceReferenceID, c.TargetReferenceID, c.Description)
		return nil
	}
	return outputJSON(c)
}

func runConnectionAnnotate(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "connection")

	db := openDB()
	defer db.Close()

	if err := db.UpdateConnectionDescription(id, args[1]); err != nil {
		exitWithError(ExitError, "updating connection: %v", err)
	}

	if humanOutput {
		outputHuman("updated connection %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "updated", ID: id})
}

func runConnectionRm(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "connection")

	db := openDB()
	defer db.Close()

	if err := db.DeleteConnection(id); err != nil {
		exitWithError(ExitError, "deleting connection: %v", err)
	}

	if humanOutput {
		outputHuman("deleted connection %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "deleted", ID: id})
}
