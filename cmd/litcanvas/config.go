package main

import (
	"github.com/litcanvas/litcanvas/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	if humanOutput {
		outputHuman("config file:  %s\n", config.Path())
		outputHuman("database:     %s\n", cfg.DatabasePath)
		outputHuman("listen addr:  %s\n", cfg.ListenAddr)
		if cfg.OpenAlexMailto != "" {
			outputHuman("mailto:       %s\n", cfg.OpenAlexMailto)
		}
		return nil
	}
	return outputJSON(cfg)
}
