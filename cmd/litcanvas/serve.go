package main

import (
	"net/http"

	"github.com/litcanvas/litcanvas/internal/api"
	"github.com/litcanvas/litcanvas/internal/config"
	"github.com/litcanvas/litcanvas/internal/openalex"
	"github.com/litcanvas/litcanvas/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to "+config.DefaultListenAddr+")")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API that backs the canvas frontend. All CRUD operations
and the paper search proxy are exposed under /api.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		exitWithError(ExitError, "initializing logger: %v", err)
	}
	defer log.Sync()

	cfg, err := config.LoadDefault()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if err := cfg.EnsureDataDir(); err != nil {
		exitWithError(ExitConfigError, "creating data directory: %v", err)
	}

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	var opts []openalex.ClientOption
	if cfg.OpenAlexMailto != "" {
		opts = append(opts, openalex.WithMailto(cfg.OpenAlexMailto))
	}
	if cfg.OpenAlexAPIKey != "" {
		opts = append(opts, openalex.WithAPIKey(cfg.OpenAlexAPIKey))
	}
	search := openalex.NewService(openalex.NewClient(opts...), log)

	srv := api.NewServer(db, search, log)
	log.Info("listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("db", cfg.DatabasePath))

	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router(cfg.AllowedOrigins)); err != nil {
		exitWithError(ExitError, "server: %v", err)
	}
	return nil
}
