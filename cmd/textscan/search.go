package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/services"
)

var (
	searchKeyword string
	searchFormat  string
	searchBackend string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search every stored document for a word",
	Long: `Search scans every document of the configured store for a
case-insensitive literal match. Use --keyword to search for one of the
fixed keywords instead of free text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cmd.Flags().Changed("store") {
			cfg.StoreBackend = searchBackend
		}

		logger := slog.Default()
		store, closeStore, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		highlighter := terminalHighlighter
		if searchFormat != formatText {
			highlighter = domain.DefaultHighlighter()
		}
		scanner := services.NewScannerService(services.ScannerConfig{
			Store:           store,
			Highlighter:     highlighter,
			ReadConcurrency: cfg.SearchReadConcurrency,
			Logger:          logger,
		})

		var free string
		if len(args) > 0 {
			free = args[0]
		}
		query, err := scanner.ResolveQuery(free, searchKeyword)
		if err != nil {
			return err
		}

		result, err := scanner.SearchCollection(cmd.Context(), query)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), searchFormat, result, func(w io.Writer) error {
			return writeSearchText(w, result)
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchKeyword, "keyword", "k", "", "Search for one of the fixed keywords")
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", formatText, "Output format: text, json or yaml")
	searchCmd.Flags().StringVar(&searchBackend, "store", backendFS, "Store backend: fs, redis or postgres (env STORE_BACKEND)")
}
