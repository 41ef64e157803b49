package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Save creates or overwrites a document. Overwrites keep the original
// enumeration position.
func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	query := `
		INSERT INTO documents (name, content, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`

	if data == nil {
		data = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, query, name, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Get retrieves the stored bytes of a document
func (s *DocumentStore) Get(ctx context.Context, name string) ([]byte, error) {
	if !domain.IsDocumentName(name) {
		return nil, domain.ErrNotFound
	}

	var content []byte
	err := s.db.QueryRowContext(ctx, `SELECT content FROM documents WHERE name = $1`, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if content == nil {
		content = []byte{}
	}
	return content, nil
}

// List returns document names in insertion order
func (s *DocumentStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM documents ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.FilterDocumentNames(names), nil
}

// Delete removes a document
func (s *DocumentStore) Delete(ctx context.Context, name string) error {
	if !domain.IsDocumentName(name) {
		return domain.ErrNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping checks if the database is reachable
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
