package driving

import (
	"context"

	"github.com/custodia-labs/textscan/internal/core/domain"
)

// DocumentService handles document upload, listing, download and deletion
type DocumentService interface {
	// Upload stores every valid file and returns one analysis per stored file.
	// Files with invalid names or no payload are skipped.
	Upload(ctx context.Context, files []domain.UploadFile) ([]*domain.AnalysisResult, error)

	// List returns all document names in store enumeration order
	List(ctx context.Context) ([]string, error)

	// Download returns the exact stored bytes or domain.ErrNotFound
	Download(ctx context.Context, name string) ([]byte, error)

	// Analyze re-analyzes a stored document
	Analyze(ctx context.Context, name string) (*domain.AnalysisResult, error)

	// Delete removes a document. Deleting an absent name reports false
	// without an error.
	Delete(ctx context.Context, name string) (bool, error)
}
