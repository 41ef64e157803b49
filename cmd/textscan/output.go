package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/textscan/internal/core/domain"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// terminalHighlighter brackets matches in plain-text output
var terminalHighlighter = domain.Highlighter{Open: "[", Close: "]"}

// writeOutput encodes v in the requested format. Text output is
// delegated to text.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatText, "":
		return text(w)
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func writeAnalysisText(w io.Writer, results []*domain.AnalysisResult) error {
	for _, res := range results {
		keywords := "None"
		if res.HasKeywords() {
			keywords = strings.Join(res.FoundKeywords, ", ")
		}
		if _, err := fmt.Fprintf(w, "%s\n  Word Count: %d\n  Found Keywords: %s\n", res.Name, res.WordCount, keywords); err != nil {
			return err
		}
	}
	return nil
}

func writeSearchText(w io.Writer, result *domain.SearchResult) error {
	if result.Empty() {
		_, err := fmt.Fprintf(w, "No files contain %q.\n", result.Query)
		return err
	}
	for _, hit := range result.Hits {
		if _, err := fmt.Fprintf(w, "== %s (%d matches)\n%s\n", hit.Name, len(hit.Matches), hit.Highlighted); err != nil {
			return err
		}
	}
	return nil
}
