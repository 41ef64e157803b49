package driving

import (
	"context"

	"github.com/custodia-labs/textscan/internal/core/domain"
)

// ScannerService analyzes document text and searches the document collection
type ScannerService interface {
	// Analyze computes word count and found keywords for text
	Analyze(name, text string) *domain.AnalysisResult

	// Search highlights every case-insensitive literal occurrence of query
	// in the given documents, dropping documents without a match
	Search(query string, docs []*domain.Document) *domain.SearchResult

	// SearchCollection runs Search over every document currently stored
	SearchCollection(ctx context.Context, query string) (*domain.SearchResult, error)

	// ResolveQuery picks the effective query from free text and a keyword
	// selection. Free text wins; a keyword must be in the keyword set.
	ResolveQuery(free, keyword string) (string, error)

	// Keywords returns the configured keyword set
	Keywords() domain.KeywordSet
}
