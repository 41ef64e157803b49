package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driving"
	"github.com/custodia-labs/textscan/internal/core/services"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <glob>...",
	Short: "Analyze local .txt files without storing them",
	Long: `Analyze reports the word count and found keywords of every local .txt
file matching the given patterns. Patterns support ** for recursive matching.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := services.NewScannerService(services.ScannerConfig{Logger: slog.Default()})

		results, err := analyzePaths(scanner, args)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), analyzeFormat, results, func(w io.Writer) error {
			return writeAnalysisText(w, results)
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatText, "Output format: text, json or yaml")
}

// analyzePaths expands patterns and analyzes every matching .txt file once,
// in match order.
func analyzePaths(scanner driving.ScannerService, patterns []string) ([]*domain.AnalysisResult, error) {
	seen := make(map[string]bool)
	results := make([]*domain.AnalysisResult, 0)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			slog.Warn("pattern matched no files", "pattern", pattern)
		}

		for _, path := range matches {
			if seen[path] || !domain.IsDocumentName(filepath.Base(path)) {
				continue
			}
			seen[path] = true

			info, err := os.Stat(path)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				continue
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			results = append(results, scanner.Analyze(path, domain.DecodeText(data)))
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no .txt files matched %v", patterns)
	}
	return results, nil
}
