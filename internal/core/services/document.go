package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven"
	"github.com/custodia-labs/textscan/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface
type documentService struct {
	store   driven.DocumentStore
	scanner driving.ScannerService
	logger  *slog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	store driven.DocumentStore,
	scanner driving.ScannerService,
	logger *slog.Logger,
) driving.DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentService{
		store:   store,
		scanner: scanner,
		logger:  logger,
	}
}

// Upload stores each valid file and analyzes it.
// A nil payload means the file part was missing and is skipped.
func (s *documentService) Upload(ctx context.Context, files []domain.UploadFile) ([]*domain.AnalysisResult, error) {
	results := make([]*domain.AnalysisResult, 0, len(files))

	for _, f := range files {
		if err := domain.ValidateName(f.Name); err != nil {
			s.logger.Debug("skipping upload", "name", f.Name, "reason", err)
			continue
		}
		if f.Data == nil {
			s.logger.Debug("skipping upload", "name", f.Name, "reason", "missing payload")
			continue
		}

		if err := s.store.Save(ctx, f.Name, f.Data); err != nil {
			return nil, fmt.Errorf("save document %s: %w", f.Name, err)
		}

		result := s.scanner.Analyze(f.Name, domain.DecodeText(f.Data))
		s.logger.Info("document uploaded",
			"name", f.Name,
			"bytes", len(f.Data),
			"words", result.WordCount,
			"keywords", result.FoundKeywords,
		)
		results = append(results, result)
	}

	return results, nil
}

// List returns all document names
func (s *documentService) List(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return names, nil
}

// Download returns the stored bytes of a document
func (s *documentService) Download(ctx context.Context, name string) ([]byte, error) {
	if !domain.IsDocumentName(name) {
		return nil, domain.ErrNotFound
	}
	return s.store.Get(ctx, name)
}

// Analyze re-analyzes a stored document
func (s *documentService) Analyze(ctx context.Context, name string) (*domain.AnalysisResult, error) {
	data, err := s.Download(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.scanner.Analyze(name, domain.DecodeText(data)), nil
}

// Delete removes a document if present
func (s *documentService) Delete(ctx context.Context, name string) (bool, error) {
	if !domain.IsDocumentName(name) {
		return false, nil
	}

	err := s.store.Delete(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete document %s: %w", name, err)
	}

	s.logger.Info("document deleted", "name", name)
	return true, nil
}
