package main

import (
	"strconv"

	"github.com/litcanvas/litcanvas/internal/topic"
	"github.com/spf13/cobra"
)

var (
	topicAddX     float64
	topicAddY     float64
	topicAddColor string
)

func init() {
	rootCmd.AddCommand(topicCmd)
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicAddCmd)
	topicCmd.AddCommand(topicRenameCmd)
	topicCmd.AddCommand(topicMoveCmd)
	topicCmd.AddCommand(topicResizeCmd)
	topicCmd.AddCommand(topicRmCmd)

	topicAddCmd.Flags().Float64Var(&topicAddX, "x", 0, "Canvas x position")
	topicAddCmd.Flags().Float64Var(&topicAddY, "y", 0, "Canvas y position")
	topicAddCmd.Flags().StringVar(&topicAddColor, "color", "", "Display color (defaults to "+topic.DefaultColor+")")
}

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Manage topics inside a project",
}

var topicListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's topics with their references",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicList,
}

var topicAddCmd = &cobra.Command{
	Use:   "add <project-id> <name>",
	Short: "Add a topic to a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runTopicAdd,
}

var topicRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a topic",
	Args:  cobra.ExactArgs(2),
	RunE:  runTopicRename,
}

var topicMoveCmd = &cobra.Command{
	Use:   "move <id> <x> <y>",
	Short: "Move a topic on the canvas",
	Args:  cobra.ExactArgs(3),
	RunE:  runTopicMove,
}

var topicResizeCmd = &cobra.Command{
	Use:   "resize <id> <width> <height>",
	Short: "Resize a topic's grid",
	Args:  cobra.ExactArgs(3),
	RunE:  runTopicResize,
}

var topicRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a topic and its references",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicRm,
}

func runTopicList(cmd *cobra.Command, args []string) error {
	projectID := parseID(args[0], "project")

	db := openDB()
	defer db.Close()

	topics, err := db.ListTopicsByProject(projectID)
	if err != nil {
		exitWithError(ExitError, "listing topics: %v", err)
	}

	if humanOutput {
		for _, t := range topics {
			outputHuman("%d\t%s\t(%.0f, %.0f)\t%d references\n", t.ID, t.Name, t.PositionX, t.PositionY, len(t.References))
			for _, r := range t.References {
				outputHuman("  %d\t%s\n", r.ID, truncateString(r.Title, ListTitleMaxLen))
			}
		}
		return nil
	}
	return outputJSON(topics)
}

func runTopicAdd(cmd *cobra.Command, args []string) error {
	projectID := parseID(args[0], "project")

	t := topic.Topic{
		ProjectID: projectID,
		Name:      args[1],
		PositionX: topicAddX,
		PositionY: topicAddY,
		Color:     topicAddColor,
	}
	if err := t.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	t.ApplyDefaults()

	db := openDB()
	defer db.Close()

	id, err := db.CreateTopic(&t)
	if err != nil {
		exitWithError(ExitError, "creating topic: %v", err)
	}

	if humanOutput {
		outputHuman("created topic %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", ID: id})
}

func runTopicRename(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "topic")
	name := args[1]
	if name == "" {
		exitWithError(ExitDataError, "%v", topic.ErrEmptyName)
	}

	db := openDB()
	defer db.Close()

	if err := db.UpdateTopicName(id, name); err != nil {
		exitWithError(ExitError, "renaming topic: %v", err)
	}

	if humanOutput {
		outputHuman("renamed topic %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "renamed", ID: id})
}

func runTopicMove(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "topic")
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		exitWithError(ExitError, "invalid x: %s", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		exitWithError(ExitError, "invalid y: %s", args[2])
	}

	db := openDB()
	defer db.Close()

	if err := db.UpdateTopicPosition(id, x, y); err != nil {
		exitWithError(ExitError, "moving topic: %v", err)
	}

	if humanOutput {
		outputHuman("moved topic %d to (%.1f, %.1f)\n", id, x, y)
		return nil
	}
	return outputJSON(StatusResponse{Status: "moved", ID: id})
}

func runTopicResize(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "topic")
	width, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || width <= 0 {
		exitWithError(ExitError, "invalid width: %s", args[1])
	}
	height, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || height <= 0 {
		exitWithError(ExitError, "invalid height: %s", args[2])
	}

	db := openDB()
	defer db.Close()

	if err := db.UpdateTopicDimensions(id, width, height); err != nil {
		exitWithError(ExitError, "resizing topic: %v", err)
	}

	if humanOutput {
		outputHuman("resized topic %d to %dx%d\n", id, width, height)
		return nil
	}
	return outputJSON(StatusResponse{Status: "resized", ID: id})
}

func runTopicRm(cmd *cobra.Command, args []string) error {
	id := parseID(args[0], "topic")

	db := openDB()
	defer db.Close()

	if err := db.DeleteTopic(id); err != nil {
		exitWithError(ExitError, "deleting topic: %v", err)
	}

	if humanOutput {
		outputHuman("deleted topic %d\n", id)
		return nil
	}
	return outputJSON(StatusResponse{Status: "deleted", ID: id})
}
