package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven"
	"github.com/custodia-labs/textscan/internal/core/ports/driving"
)

// Ensure scannerService implements ScannerService
var _ driving.ScannerService = (*scannerService)(nil)

// defaultReadConcurrency bounds parallel document reads during a search.
const defaultReadConcurrency = 8

// scannerService implements the ScannerService interface
type scannerService struct {
	store           driven.DocumentStore
	keywords        domain.KeywordSet
	highlighter     domain.Highlighter
	readConcurrency int
	logger          *slog.Logger
}

// ScannerConfig holds dependencies for the scanner service.
// Zero values fall back to the default keywords, highlighter and
// read concurrency.
type ScannerConfig struct {
	Store           driven.DocumentStore
	Keywords        domain.KeywordSet
	Highlighter     domain.Highlighter
	ReadConcurrency int
	Logger          *slog.Logger
}

// NewScannerService creates a new ScannerService
func NewScannerService(cfg ScannerConfig) driving.ScannerService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	keywords := cfg.Keywords
	if keywords.Len() == 0 {
		keywords = domain.DefaultKeywords()
	}

	highlighter := cfg.Highlighter
	if highlighter.Open == "" && highlighter.Close == "" {
		highlighter = domain.DefaultHighlighter()
	}

	concurrency := cfg.ReadConcurrency
	if concurrency <= 0 {
		concurrency = defaultReadConcurrency
	}

	return &scannerService{
		store:           cfg.Store,
		keywords:        keywords,
		highlighter:     highlighter,
		readConcurrency: concurrency,
		logger:          logger,
	}
}

// Keywords returns the configured keyword set
func (s *scannerService) Keywords() domain.KeywordSet {
	return s.keywords
}

// Analyze computes word count and found keywords for text
func (s *scannerService) Analyze(name, text string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Name:          name,
		WordCount:     len(strings.Fields(text)),
		FoundKeywords: s.keywords.FoundIn(text),
	}
}

// Search highlights query in every document that contains it.
// Hits keep the order of docs.
func (s *scannerService) Search(query string, docs []*domain.Document) *domain.SearchResult {
	start := time.Now()

	hits := make([]*domain.SearchHit, 0)
	if query != "" {
		for _, doc := range docs {
			text := doc.Text()
			spans := findMatches(text, query)
			if len(spans) == 0 {
				continue
			}
			hits = append(hits, &domain.SearchHit{
				Name:        doc.Name,
				Content:     text,
				Highlighted: s.highlighter.Apply(text, spans),
				Matches:     spans,
			})
		}
	}

	return &domain.SearchResult{
		Query:      query,
		Hits:       hits,
		TotalCount: len(hits),
		Took:       time.Since(start),
	}
}

// SearchCollection reads every stored document and searches them.
// Documents deleted while the scan is running are skipped.
func (s *scannerService) SearchCollection(ctx context.Context, query string) (*domain.SearchResult, error) {
	start := time.Now()

	if query == "" {
		return s.Search(query, nil), nil
	}

	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]*domain.Document, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.readConcurrency)
	for i, name := range names {
		g.Go(func() error {
			data, err := s.store.Get(gctx, name)
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Debug("document vanished during search", "name", name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("read document %s: %w", name, err)
			}
			docs[i] = &domain.Document{Name: name, Content: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	present := make([]*domain.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			present = append(present, doc)
		}
	}

	result := s.Search(query, present)
	result.Took = time.Since(start)

	s.logger.Info("search completed",
		"query", query,
		"documents", len(present),
		"hits", result.TotalCount,
		"took", result.Took,
	)

	return result, nil
}

// ResolveQuery returns free when set, otherwise keyword, which must be
// one of the configured keywords.
func (s *scannerService) ResolveQuery(free, keyword string) (string, error) {
	if free != "" {
		return free, nil
	}
	if keyword == "" {
		return "", nil
	}
	if !s.keywords.Contains(keyword) {
		return "", fmt.Errorf("%w: unknown keyword %q", domain.ErrInvalidInput, keyword)
	}
	return keyword, nil
}
