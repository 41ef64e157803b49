package driven

import (
	"context"
)

// DocumentStore persists documents as named byte payloads.
// Implementations only enumerate names ending in the document extension
// and return domain.ErrNotFound for absent names.
type DocumentStore interface {
	// Save creates or overwrites a document (last write wins)
	Save(ctx context.Context, name string, data []byte) error

	// Get retrieves the exact stored bytes of a document
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns all document names in enumeration order
	List(ctx context.Context) ([]string, error)

	// Delete removes a document. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, name string) error

	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
}
