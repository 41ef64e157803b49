package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	httpadapter "github.com/custodia-labs/textscan/internal/adapters/driving/http"
	"github.com/custodia-labs/textscan/internal/core/services"
)

var (
	serveHost      string
	servePort      int
	serveUploadDir string
	serveBackend   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("upload-dir") {
			cfg.UploadDir = serveUploadDir
		}
		if cmd.Flags().Changed("store") {
			cfg.StoreBackend = serveBackend
		}

		logger := slog.Default()
		logger.Info("textscan starting", "version", version, "backend", cfg.StoreBackend)

		store, closeStore, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(); err != nil {
				logger.Warn("failed to close store", "error", err)
			}
		}()

		// ===== Services =====
		scanner := services.NewScannerService(services.ScannerConfig{
			Store:           store,
			ReadConcurrency: cfg.SearchReadConcurrency,
			Logger:          logger,
		})
		docService := services.NewDocumentService(store, scanner, logger)

		// ===== HTTP server =====
		server := httpadapter.NewServer(httpadapter.Config{
			Host:           cfg.Host,
			Port:           cfg.Port,
			Version:        version,
			MaxUploadBytes: cfg.MaxUploadBytes,
			CORSOrigins:    cfg.CORSOrigins,
			Logger:         logger,
		}, scanner, docService, store)

		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Listen address (env HOST)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Listen port (env PORT)")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "uploads", "Directory of the fs store (env UPLOAD_DIR)")
	serveCmd.Flags().StringVar(&serveBackend, "store", backendFS, "Store backend: fs, redis or postgres (env STORE_BACKEND)")
}
